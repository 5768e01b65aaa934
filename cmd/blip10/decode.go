package main

import (
	"encoding/json"
	stderrors "errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Moooover/blip-10/core/boostagram"
	coreerrors "github.com/Moooover/blip-10/core/errors"
)

type decodeOutput struct {
	OK         bool            `json:"ok"`
	Format     string          `json:"format,omitempty"`
	Action     string          `json:"action,omitempty"`
	HasAnchor  bool            `json:"has_anchor"`
	Digest     string          `json:"digest,omitempty"`
	Boostagram json.RawMessage `json:"boostagram,omitempty"`
	errorFields
}

func runDecode(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Decode a boostagram from base64 or JSON and report its fields, action, anchor state and canonical digest.")
	}
	flagSet := flag.NewFlagSet("decode", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var compact string
	var text string
	var inputPath string
	var jsonOutput bool
	var verbose bool
	var helpFlag bool

	flagSet.StringVar(&compact, "b64", "", "compact base64 payload")
	flagSet.StringVar(&text, "text", "", "structured json payload")
	flagSet.StringVar(&inputPath, "in", "", "file holding either form, or - for stdin")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&verbose, "verbose", false, "log debug detail to stderr")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeDecodeOutput(jsonOutput, decodeOutput{}, err, exitInvalidInput)
	}
	if helpFlag {
		printDecodeUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeDecodeOutput(jsonOutput, decodeOutput{}, fmt.Errorf("unexpected positional arguments"), exitInvalidInput)
	}
	logger := newLogger(verbose)

	sources := 0
	for _, value := range []string{compact, text, inputPath} {
		if strings.TrimSpace(value) != "" {
			sources++
		}
	}
	if sources != 1 {
		return writeDecodeOutput(jsonOutput, decodeOutput{}, fmt.Errorf("exactly one of --b64, --text or --in is required"), exitInvalidInput)
	}

	format := "base64"
	payload := []byte(strings.TrimSpace(compact))
	switch {
	case strings.TrimSpace(text) != "":
		format = "json"
		payload = []byte(text)
	case strings.TrimSpace(inputPath) != "":
		data, err := readInput(inputPath)
		if err != nil {
			return writeDecodeOutput(jsonOutput, decodeOutput{}, err, exitCodeForError(err, exitInternalFailure))
		}
		payload = data
		if looksLikeJSON(data) {
			format = "json"
		} else {
			payload = []byte(strings.TrimSpace(string(data)))
		}
	}
	logger.Debug("decoding boostagram", "format", format, "bytes", len(payload))

	var decoded boostagram.Boostagram
	var err error
	if format == "json" {
		decoded, err = boostagram.FromJSONBytes(payload)
	} else {
		decoded, err = boostagram.FromBase64(string(payload))
	}
	if err != nil {
		return writeDecodeOutput(jsonOutput, decodeOutput{Format: format}, err, exitCodeForError(err, exitDecodeFailed))
	}

	digest, err := decoded.Digest()
	switch {
	case stderrors.Is(err, boostagram.ErrNotCanonical):
		logger.Info("digest omitted", "reason", err.Error())
	case err != nil:
		wrapped := coreerrors.Terminal(err, coreerrors.CategoryInternalFailure, "digest_failed", "")
		return writeDecodeOutput(jsonOutput, decodeOutput{Format: format}, wrapped, exitInternalFailure)
	}
	output := decodeOutput{
		OK:         true,
		Format:     format,
		HasAnchor:  decoded.HasAnchor(),
		Digest:     digest,
		Boostagram: decoded.ToJSON(),
	}
	if decoded.Action != nil {
		output.Action = decoded.Action.String()
	}
	if !output.HasAnchor {
		logger.Info("boostagram has no podcast, feed id, url or guid", "digest", digest)
	}
	return writeDecodeOutput(jsonOutput, output, nil, exitOK)
}

func writeDecodeOutput(jsonOutput bool, output decodeOutput, err error, exitCode int) int {
	if err != nil {
		output.OK = false
		output.errorFields = errorFieldsFor(err, exitCode)
	}
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if output.OK {
		fmt.Printf("decode ok: format=%s action=%s anchor=%t digest=%s\n", output.Format, valueOrDash(output.Action), output.HasAnchor, output.Digest)
		fmt.Println(string(output.Boostagram))
		return exitCode
	}
	fmt.Printf("decode error: %s\n", output.Error)
	return exitCode
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func printDecodeUsage() {
	fmt.Println("Usage:")
	fmt.Println("  blip10 decode (--b64 <text>|--text <json>|--in <path|->) [--json] [--verbose] [--explain]")
}
