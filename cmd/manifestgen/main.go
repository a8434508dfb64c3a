package main

import (
	"flag"
	"log"

	"github.com/danmuck/scaffoldctl/internal/manifest"
)

func main() {
	kind := flag.String("kind", "toml", "manifest kind: toml|yaml")
	output := flag.String("output", "", "output path for manifest template")
	validate := flag.Bool("validate", false, "validate an existing manifest file")
	input := flag.String("input", "", "manifest path for validation (defaults to per-kind path)")
	force := flag.Bool("force", false, "overwrite existing manifest file")
	flag.Parse()

	if *validate {
		path := *input
		if path == "" {
			path = defaultPath(*kind)
		}
		m, err := manifest.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated %s manifest at %s (%d files)", *kind, path, len(m.Files))
		return
	}

	target := *output
	if target == "" {
		target = defaultPath(*kind)
	}
	if err := manifest.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s manifest template to %s", *kind, target)
}

func defaultPath(kind string) string {
	switch kind {
	case "toml":
		return "scaffold.toml"
	case "yaml", "yml":
		return "scaffold.yaml"
	default:
		log.Fatalf("unknown kind: %s", kind)
		return ""
	}
}
