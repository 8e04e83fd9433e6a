// Package env loads KEY=VALUE pairs from a .env file into the process
// environment so config files can reference them as ${KEY}.
package env

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Load reads path and sets every pair with os.Setenv. Values from the file
// override the inherited environment. A missing file is not an error.
// It returns the number of variables set.
func Load(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	vars, err := Parse(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	for k, v := range vars {
		if err := os.Setenv(k, v); err != nil {
			return 0, fmt.Errorf("%s: set %s: %w", path, k, err)
		}
	}
	return len(vars), nil
}

// Parse reads .env syntax:
//
//	# comment
//	CHAINFETCH_BLOCK_URL=https://blockchain.info/rawblock
//	export API_KEY="quoted value"
//
// Blank lines and comments are skipped, a leading "export " is ignored, and
// one layer of matching single or double quotes is stripped from the value.
func Parse(r io.Reader) (map[string]string, error) {
	vars := make(map[string]string)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("line %d: expected KEY=VALUE", lineNo)
		}
		vars[key] = unquote(strings.TrimSpace(value))
	}
	return vars, sc.Err()
}

func unquote(v string) string {
	if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
		return v[1 : len(v)-1]
	}
	return v
}
