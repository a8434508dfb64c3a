package main

import (
	"path/filepath"
	"testing"

	"github.com/danmuck/scaffoldctl/internal/scaffold"
)

func TestDemoDescriptorsPrefixesRelativePaths(t *testing.T) {
	descriptors := demoDescriptors([]scaffold.Descriptor{
		scaffold.PathOnly("src/app.py"),
		scaffold.PathWithContent("README.md", "# hi\n"),
	})

	if got := descriptors[0].Path; got != filepath.Join(demoDir, "src", "app.py") {
		t.Fatalf("unexpected prefixed path: %q", got)
	}
	if got := descriptors[1].Path; got != filepath.Join(demoDir, "README.md") {
		t.Fatalf("unexpected prefixed path: %q", got)
	}
	if descriptors[1].Content == nil || *descriptors[1].Content != "# hi\n" {
		t.Fatalf("prefixing dropped content: %+v", descriptors[1].Content)
	}
}

func TestDemoDescriptorsKeepsAbsoluteAndBlankPaths(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "pinned.txt")
	descriptors := demoDescriptors([]scaffold.Descriptor{
		scaffold.PathOnly(abs),
		{Path: "   "},
	})

	if descriptors[0].Path != abs {
		t.Fatalf("absolute path was rewritten: %q", descriptors[0].Path)
	}
	if descriptors[1].Path != "   " {
		t.Fatalf("blank path was rewritten: %q", descriptors[1].Path)
	}
}

func TestBuiltinDescriptorsMatchStarterLayout(t *testing.T) {
	descriptors := builtinDescriptors()
	if len(descriptors) != 8 {
		t.Fatalf("expected 8 starter descriptors, got %d", len(descriptors))
	}
	if descriptors[0].Path != "src/__init__.py" {
		t.Fatalf("unexpected first descriptor: %q", descriptors[0].Path)
	}

	readme := descriptors[len(descriptors)-1]
	if readme.Path != "README_SAMPLE.md" {
		t.Fatalf("unexpected last descriptor: %q", readme.Path)
	}
	if readme.Content == nil {
		t.Fatalf("expected readme content")
	}
	for i, desc := range descriptors[:len(descriptors)-1] {
		if desc.Content != nil {
			t.Fatalf("descriptor[%d]: expected default content, got %q", i, *desc.Content)
		}
	}
}
