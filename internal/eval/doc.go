// Package eval is the generic tree evaluator the world-building forms run
// on. It evaluates the handful of core forms the room graph needs (literal
// grouping, LIST, flag combination, global and local lookup) and hands every
// other tagged form to a handler looked up by tag.
//
// An Evaluator owns its handler table and its global store. Both are fixed
// or private to one run, so independent conversions never share state.
package eval
