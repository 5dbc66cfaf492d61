package hcl

import "github.com/hashicorp/hcl/v2"

// GlobalsBlock represents the `globals` block. Every attribute inside it
// seeds one global value.
type GlobalsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// fileRoot represents the top-level structure of a run configuration file.
type fileRoot struct {
	Input       string        `hcl:"input,optional"`
	Output      string        `hcl:"output,optional"`
	Format      string        `hcl:"format,optional"`
	GraphName   string        `hcl:"graph_name,optional"`
	Diagnostics bool          `hcl:"diagnostics,optional"`
	Color       string        `hcl:"color,optional"`
	Style       string        `hcl:"style,optional"`
	LogLevel    string        `hcl:"log_level,optional"`
	LogFormat   string        `hcl:"log_format,optional"`
	Globals     *GlobalsBlock `hcl:"globals,block"`
}
