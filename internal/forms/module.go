package forms

import "github.com/vk/lantern/internal/eval"

// Module registers the world-building form handlers.
type Module struct{}

// Register implements eval.Module.
func (Module) Register(r *eval.Registry) {
	r.Register("ROOM", roomForm)
	r.Register("EXIT", exitForm)
	r.Register("CEXIT", conditionalExitForm)
	r.Register("DOOR", doorForm)
	r.Register("SETG", setGlobalForm)
	// PSETG also records the name as pure in MDL; only the assignment matters here.
	r.Register("PSETG", setGlobalForm)
}
