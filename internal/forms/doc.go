// Package forms implements the world-building forms of the Zork MDL source
// on top of the generic evaluator: ROOM builds a room record, EXIT resolves
// its exit list, CEXIT and DOOR collapse conditional and two-sided exits to
// a single target, and SETG/PSETG assign globals.
//
// A room's identity travels to nested exit resolution as an explicit
// eval.RoomContext. Forms reached through generic evaluation recover it
// from the ROOM-KEY binding instead.
package forms
