package scaffold

import "testing"

func TestPathOnlyLeavesContentUnset(t *testing.T) {
	desc := PathOnly("src/app.py")
	if desc.Path != "src/app.py" {
		t.Fatalf("unexpected path: %q", desc.Path)
	}
	if desc.Content != nil {
		t.Fatalf("expected nil content, got %q", *desc.Content)
	}
}

func TestPathWithContentKeepsEmptyString(t *testing.T) {
	desc := PathWithContent("notes.txt", "")
	if desc.Content == nil {
		t.Fatalf("expected explicit content pointer")
	}
	if *desc.Content != "" {
		t.Fatalf("expected empty content, got %q", *desc.Content)
	}
}

func TestPathWithContentCarriesContent(t *testing.T) {
	desc := PathWithContent("README.md", "# hi\n")
	if desc.Content == nil || *desc.Content != "# hi\n" {
		t.Fatalf("unexpected content: %+v", desc.Content)
	}
}
