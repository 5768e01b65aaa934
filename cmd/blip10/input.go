package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	coreerrors "github.com/Moooover/blip-10/core/errors"
)

var stdinReader io.Reader = os.Stdin

// readInput reads path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, coreerrors.Terminal(fmt.Errorf("--in is required"), coreerrors.CategoryInvalidInput, "missing_input", "pass --in <path> or --in - for stdin")
	}
	var (
		data []byte
		err  error
	)
	if trimmed == "-" {
		data, err = io.ReadAll(stdinReader)
	} else {
		// #nosec G304 -- input path is explicit local user input.
		data, err = os.ReadFile(trimmed)
	}
	if err != nil {
		return nil, coreerrors.Terminal(fmt.Errorf("read input: %w", err), coreerrors.CategoryIOFailure, "input_read_failed", "check the input path and permissions")
	}
	return data, nil
}

// looksLikeJSON reports whether payload is structured text rather than the
// compact base64 form.
func looksLikeJSON(payload []byte) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
