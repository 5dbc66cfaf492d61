// Package mdl reads MDL (Muddle) source text into a syntax tree. The tree is
// a closed set of node types, one per kind of object the notation can spell,
// so evaluators switch on node type rather than inspecting raw token text.
//
// The reader is deliberately shallow: it knows the bracket and prefix
// syntax of the language but attaches no meaning to any form.
package mdl
