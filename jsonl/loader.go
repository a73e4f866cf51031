// Package jsonl provides JSONL file handling for themes: a file-backed store
// and the import/export format.
package jsonl

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/themecraft"
)

// maxLineSize is the maximum size for a single JSONL line (1MB).
const maxLineSize = 1024 * 1024

// Load reads every theme from a JSONL file.
func Load(path string) ([]themecraft.Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read decodes one theme per non-blank line.
func Read(r io.Reader) ([]themecraft.Theme, error) {
	var themes []themecraft.Theme
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var t themecraft.Theme
		if err := json.Unmarshal([]byte(line), &t); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		themes = append(themes, t)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return themes, nil
}
