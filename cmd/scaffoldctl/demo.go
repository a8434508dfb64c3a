package main

import (
	"path/filepath"
	"strings"

	"github.com/danmuck/scaffoldctl/internal/scaffold"
)

// demoDir sandboxes default runs so the configured paths cannot
// overwrite files in the invoking project.
const demoDir = "demo_created_files"

// builtinDescriptors is the starter layout used when no manifest is given.
func builtinDescriptors() []scaffold.Descriptor {
	return []scaffold.Descriptor{
		scaffold.PathOnly("src/__init__.py"),
		scaffold.PathOnly("src/helper.py"),
		scaffold.PathOnly("src/prompt.py"),
		scaffold.PathOnly(".env"),
		scaffold.PathOnly("setup.py"),
		scaffold.PathOnly("app.py"),
		scaffold.PathOnly("research/trails.ipynb"),
		scaffold.PathWithContent("README_SAMPLE.md", "# Sample README\nThis file was created by scaffoldctl\n"),
	}
}

// demoDescriptors prefixes every relative path with the sandbox
// directory. Absolute paths pass through untouched, and blank paths are
// kept blank so the scaffolder still reports them as failures.
func demoDescriptors(descriptors []scaffold.Descriptor) []scaffold.Descriptor {
	out := make([]scaffold.Descriptor, 0, len(descriptors))
	for _, desc := range descriptors {
		trimmed := strings.TrimSpace(desc.Path)
		if trimmed != "" && !filepath.IsAbs(trimmed) {
			desc.Path = filepath.Join(demoDir, trimmed)
		}
		out = append(out, desc)
	}
	return out
}
