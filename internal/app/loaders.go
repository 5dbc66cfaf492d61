package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/lantern/internal/config"
	"github.com/vk/lantern/internal/hcl"
	"github.com/vk/lantern/internal/jsoncfg"
	"github.com/vk/lantern/internal/yamlcfg"
)

// loaderFor picks a configuration loader from the file extension.
func loaderFor(path string) (config.Loader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return hcl.NewLoader(), nil
	case ".yaml", ".yml":
		return yamlcfg.NewLoader(), nil
	case ".json", ".jsonc":
		return jsoncfg.NewLoader(), nil
	}
	return nil, fmt.Errorf("unsupported configuration file %s: expected .hcl, .yaml, .yml, .json or .jsonc", path)
}
