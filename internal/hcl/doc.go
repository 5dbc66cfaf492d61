// Package hcl provides the HCL implementation of the config.Loader
// interface. It is responsible for parsing a run configuration file,
// translating it into the format-agnostic model, and converting cty values
// in the globals block into plain Go values.
package hcl
