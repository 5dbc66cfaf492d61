// Package config defines the format-agnostic run configuration for a
// conversion, along with the Loader interface that format-specific packages
// implement.
//
// The `config.Model` is what the application merges with command-line
// flags. Concrete loaders for HCL, YAML and JSON-with-comments live in
// separate packages.
package config
