// Package render serializes a recovered room graph. Each format is a
// Renderer over the same Document: simplified Lisp built from the quoted
// room records, indented JSON of the flattened graph, and a GraphViz
// digraph of rooms and exits.
package render
