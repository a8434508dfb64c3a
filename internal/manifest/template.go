package manifest

import (
	"fmt"
	"os"
	"strings"
)

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "toml":
		return tomlTemplate, nil
	case "yaml", "yml":
		return yamlTemplate, nil
	default:
		return "", fmt.Errorf("unknown manifest kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("manifest already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const tomlTemplate = `# scaffoldctl manifest
# Each files entry is a bare path, a [path, content] pair, or an inline
# table with path and optional content.
default_content = ""

files = [
    "src/__init__.py",
    "src/helper.py",
    "src/prompt.py",
    ".env",
    "setup.py",
    "research/trails.ipynb",
    ["README_SAMPLE.md", "# Sample README\nThis file was created by scaffoldctl\n"],
    { path = "app.py" },
]
`

const yamlTemplate = `# scaffoldctl manifest
# Each files entry is a bare path, a [path, content] pair, or a mapping
# with path and optional content.
default_content: ""

files:
  - src/__init__.py
  - src/helper.py
  - src/prompt.py
  - .env
  - setup.py
  - research/trails.ipynb
  - ["README_SAMPLE.md", "# Sample README\nThis file was created by scaffoldctl\n"]
  - path: app.py
`
