package api

import (
	"fmt"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Load reads and decodes an engine configuration file. The filesystem is
// abstracted so tests can load from memfs. Both native HCL (.hcl) and HCL
// JSON (.json) syntax are accepted, keyed off the file extension.
func Load(fsys billy.Filesystem, path string) (*Config, error) {
	src, err := util.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := hclsimple.Decode(path, src, nil, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	return &cfg, nil
}
