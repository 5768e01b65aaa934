package main

import (
	stderrors "errors"
	"flag"
	"fmt"
	"io"

	"github.com/Moooover/blip-10/core/boostagram"
)

type encodeOutput struct {
	OK     bool   `json:"ok"`
	Base64 string `json:"base64,omitempty"`
	Digest string `json:"digest,omitempty"`
	errorFields
}

func runEncode(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Read a boostagram JSON document, require a podcast, feed id, url or guid, and print the compact base64 form.")
	}
	flagSet := flag.NewFlagSet("encode", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var inputPath string
	var jsonOutput bool
	var verbose bool
	var helpFlag bool

	flagSet.StringVar(&inputPath, "in", "", "boostagram json file, or - for stdin")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&verbose, "verbose", false, "log debug detail to stderr")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeEncodeOutput(jsonOutput, encodeOutput{}, err, exitInvalidInput)
	}
	if helpFlag {
		printEncodeUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeEncodeOutput(jsonOutput, encodeOutput{}, fmt.Errorf("unexpected positional arguments"), exitInvalidInput)
	}
	logger := newLogger(verbose)

	data, err := readInput(inputPath)
	if err != nil {
		return writeEncodeOutput(jsonOutput, encodeOutput{}, err, exitCodeForError(err, exitInvalidInput))
	}
	decoded, err := boostagram.FromJSONBytes(data)
	if err != nil {
		return writeEncodeOutput(jsonOutput, encodeOutput{}, err, exitCodeForError(err, exitDecodeFailed))
	}
	built, err := boostagram.BuilderFrom(decoded).Build()
	if err != nil {
		return writeEncodeOutput(jsonOutput, encodeOutput{}, err, exitCodeForError(err, exitValidationFailed))
	}
	digest, err := built.Digest()
	switch {
	case stderrors.Is(err, boostagram.ErrNotCanonical):
		logger.Info("digest omitted", "reason", err.Error())
	case err != nil:
		return writeEncodeOutput(jsonOutput, encodeOutput{}, err, exitInternalFailure)
	}
	encoded := built.ToBase64()
	logger.Debug("encoded boostagram", "digest", digest, "bytes", len(encoded))
	return writeEncodeOutput(jsonOutput, encodeOutput{OK: true, Base64: encoded, Digest: digest}, nil, exitOK)
}

func writeEncodeOutput(jsonOutput bool, output encodeOutput, err error, exitCode int) int {
	if err != nil {
		output.OK = false
		output.errorFields = errorFieldsFor(err, exitCode)
	}
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if output.OK {
		fmt.Println(output.Base64)
		return exitCode
	}
	fmt.Printf("encode error: %s\n", output.Error)
	return exitCode
}

func printEncodeUsage() {
	fmt.Println("Usage:")
	fmt.Println("  blip10 encode --in <path|-> [--json] [--verbose] [--explain]")
}
