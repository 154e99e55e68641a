package quiz

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ExportYAML writes one quiz as a YAML document.
func ExportYAML(w io.Writer, q Quiz) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(q); err != nil {
		return fmt.Errorf("encode quiz %s: %w", q.ID, err)
	}
	return enc.Close()
}

// ImportYAML reads one quiz from a YAML document. The quiz is not validated
// here; the library does that when it is stored.
func ImportYAML(r io.Reader) (Quiz, error) {
	var q Quiz
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&q); err != nil {
		return Quiz{}, fmt.Errorf("decode quiz: %w", err)
	}
	return q, nil
}

func ExportYAMLFile(path string, q Quiz) error {
	var buf bytes.Buffer
	if err := ExportYAML(&buf, q); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func ImportYAMLFile(path string) (Quiz, error) {
	f, err := os.Open(path)
	if err != nil {
		return Quiz{}, err
	}
	defer f.Close()
	return ImportYAML(f)
}
