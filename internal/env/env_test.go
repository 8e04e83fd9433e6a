package env

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	input := `
# comment
PLAIN=value
export EXPORTED=yes
DOUBLE="a b"
SINGLE='c=d'
EMPTY=
MISMATCHED="open
`
	vars, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := map[string]string{
		"PLAIN":      "value",
		"EXPORTED":   "yes",
		"DOUBLE":     "a b",
		"SINGLE":     "c=d",
		"EMPTY":      "",
		"MISMATCHED": `"open`,
	}
	if len(vars) != len(want) {
		t.Errorf("len(vars) = %d, want %d: %v", len(vars), len(want), vars)
	}
	for k, v := range want {
		if vars[k] != v {
			t.Errorf("vars[%s] = %q, want %q", k, vars[k], v)
		}
	}
}

func TestParseRejectsMalformedLine(t *testing.T) {
	if _, err := Parse(strings.NewReader("OK=1\nnot a pair\n")); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Parse() error = %v, want line 2 error", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("CHAINFETCH_ENV_TEST=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHAINFETCH_ENV_TEST", "inherited")

	n, err := Load(path)
	if err != nil || n != 1 {
		t.Fatalf("Load() = %d, %v", n, err)
	}
	if got := os.Getenv("CHAINFETCH_ENV_TEST"); got != "from-file" {
		t.Errorf("CHAINFETCH_ENV_TEST = %q, want from-file", got)
	}

	if n, err := Load(filepath.Join(dir, "missing.env")); n != 0 || err != nil {
		t.Errorf("Load(missing) = %d, %v; want 0, nil", n, err)
	}
}
