package jsonl

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/themecraft"
)

// Save writes themes to a JSONL file, replacing its contents and creating
// parent directories if needed.
func Save(path string, themes []themecraft.Theme) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := Write(f, themes); err != nil {
		return err
	}
	return f.Close()
}

// Write encodes one theme per line.
func Write(w io.Writer, themes []themecraft.Theme) error {
	for _, t := range themes {
		data, err := json.Marshal(t)
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
