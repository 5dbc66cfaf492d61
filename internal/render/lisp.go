package render

import (
	"io"
	"strings"

	"github.com/steelseries/golisp"
	"github.com/vk/lantern/internal/eval"
)

// Lisp writes one (room KEY (name NAME) (desc DESC) (exit DIR TARGET ...))
// block per room, separated by blank lines. String fields keep their quotes.
func Lisp(w io.Writer, doc *Document) error {
	blocks := make([]string, 0, len(doc.Rooms))
	for _, r := range doc.Rooms {
		exit := make([]*golisp.Data, 0, len(r.Exits)+1)
		exit = append(exit, golisp.Intern("exit"))
		for _, v := range r.Exits {
			exit = append(exit, literal(v))
		}

		room := golisp.ArrayToList([]*golisp.Data{
			golisp.Intern("room"),
			literal(r.Key),
			golisp.ArrayToList([]*golisp.Data{golisp.Intern("name"), literal(r.Name)}),
			golisp.ArrayToList([]*golisp.Data{golisp.Intern("desc"), literal(r.Description)}),
			golisp.ArrayToList(exit),
		})
		blocks = append(blocks, golisp.String(room))
	}
	if len(blocks) == 0 {
		return nil
	}
	_, err := io.WriteString(w, strings.Join(blocks, "\n\n")+"\n")
	return err
}

// literal converts a field for golisp. String literals become golisp
// strings, so golisp does the quoting; tokens print as symbols.
func literal(v eval.Value) *golisp.Data {
	if s, ok := v.(eval.Str); ok {
		return golisp.StringWithValue(string(s))
	}
	return golisp.Intern(v.String())
}
