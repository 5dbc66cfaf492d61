// Package app contains the core application logic. It defines the App
// struct, its configuration, the MDL to artifact conversion pipeline and
// the run lifecycle, decoupled from any specific entrypoint like a CLI.
package app
