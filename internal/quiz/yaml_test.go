package quiz

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestYAMLRoundTrip(t *testing.T) {
	original := sampleQuiz()
	original.TimeLimit = 120

	var buf bytes.Buffer
	if err := ExportYAML(&buf, original); err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}
	if !strings.Contains(buf.String(), "time_limit: 120") || !strings.Contains(buf.String(), "correct_answer: 3") {
		t.Fatalf("unexpected yaml:\n%s", buf.String())
	}

	decoded, err := ImportYAML(&buf)
	if err != nil {
		t.Fatalf("ImportYAML failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", decoded, original)
	}
}

func TestYAMLFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.yaml")
	original := sampleQuiz()

	if err := ExportYAMLFile(path, original); err != nil {
		t.Fatalf("ExportYAMLFile failed: %v", err)
	}
	decoded, err := ImportYAMLFile(path)
	if err != nil {
		t.Fatalf("ImportYAMLFile failed: %v", err)
	}
	if decoded.Title != original.Title || len(decoded.Questions) != 4 {
		t.Fatalf("unexpected decoded quiz: %+v", decoded)
	}
}

func TestImportYAMLRejectsBadDocuments(t *testing.T) {
	cases := map[string]string{
		"five options": `
title: Too many
questions:
  - text: Q
    options: [a, b, c, d, e]
    correct_answer: 0
`,
		"unknown field": `
title: Typo
questionz: []
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ImportYAML(strings.NewReader(doc)); err == nil {
				t.Fatalf("expected decode error")
			}
		})
	}
}

func TestImportYAMLMissingFile(t *testing.T) {
	if _, err := ImportYAMLFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
