package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeNewlines(t *testing.T) {
	input := []byte("{\r\n  \"ok\": true\r\n}\r\n")
	expected := []byte("{\n  \"ok\": true\n}\n")

	actual := normalizeNewlines(input)
	if !bytes.Equal(actual, expected) {
		t.Fatalf("unexpected newline normalization: got=%q want=%q", string(actual), string(expected))
	}
}

func TestRepoRootContainsGoMod(t *testing.T) {
	root := RepoRoot(t)
	if _, err := os.Stat(filepath.Join(root, "go.mod")); err != nil {
		t.Fatalf("expected go.mod at repo root: %v", err)
	}
}

func TestWriteFileAndMustReadFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nested", "output.json")
	WriteFile(t, target, []byte(`{"ok":true}`))
	got := MustReadFile(t, target)
	if string(got) != `{"ok":true}` {
		t.Fatalf("unexpected file content: %q", string(got))
	}
}

func TestCaptureStdout(t *testing.T) {
	output := CaptureStdout(t, func() {
		fmt.Println("captured line")
	})
	if string(output) != "captured line\n" {
		t.Fatalf("unexpected captured output: %q", string(output))
	}
}
