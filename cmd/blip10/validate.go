package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	coreerrors "github.com/Moooover/blip-10/core/errors"
	"github.com/Moooover/blip-10/core/schema/validate"
)

type validateOutput struct {
	OK     bool   `json:"ok"`
	Schema string `json:"schema,omitempty"`
	JSONL  bool   `json:"jsonl,omitempty"`
	errorFields
}

func runValidate(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Lint boostagram JSON (or JSONL) against the embedded wire schema or a schema file.")
	}
	flagSet := flag.NewFlagSet("validate", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var inputPath string
	var schemaPath string
	var jsonl bool
	var jsonOutput bool
	var verbose bool
	var helpFlag bool

	flagSet.StringVar(&inputPath, "in", "", "json or jsonl file, or - for stdin")
	flagSet.StringVar(&schemaPath, "schema", "", "schema file (defaults to the embedded boostagram schema)")
	flagSet.BoolVar(&jsonl, "jsonl", false, "treat input as newline-delimited json")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&verbose, "verbose", false, "log debug detail to stderr")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeValidateOutput(jsonOutput, validateOutput{}, err, exitInvalidInput)
	}
	if helpFlag {
		printValidateUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeValidateOutput(jsonOutput, validateOutput{}, fmt.Errorf("unexpected positional arguments"), exitInvalidInput)
	}
	logger := newLogger(verbose)

	data, err := readInput(inputPath)
	if err != nil {
		return writeValidateOutput(jsonOutput, validateOutput{}, err, exitCodeForError(err, exitInvalidInput))
	}
	if strings.EqualFold(filepath.Ext(strings.TrimSpace(inputPath)), ".jsonl") {
		jsonl = true
	}
	output := validateOutput{Schema: "embedded", JSONL: jsonl}
	schemaPath = strings.TrimSpace(schemaPath)
	if schemaPath != "" {
		output.Schema = schemaPath
	}
	logger.Debug("linting payload", "schema", output.Schema, "jsonl", jsonl, "bytes", len(data))

	switch {
	case schemaPath == "" && jsonl:
		err = validate.ValidateBoostagramJSONL(data)
	case schemaPath == "":
		err = validate.ValidateBoostagramJSON(data)
	case jsonl:
		err = validate.ValidateJSONL(schemaPath, data)
	default:
		err = validate.ValidateJSON(schemaPath, data)
	}
	if err != nil {
		wrapped := coreerrors.Terminal(err, coreerrors.CategoryValidation, "schema_validation_failed", "fix the reported fields or pass a different --schema")
		return writeValidateOutput(jsonOutput, output, wrapped, exitValidationFailed)
	}
	output.OK = true
	return writeValidateOutput(jsonOutput, output, nil, exitOK)
}

func writeValidateOutput(jsonOutput bool, output validateOutput, err error, exitCode int) int {
	if err != nil {
		output.OK = false
		output.errorFields = errorFieldsFor(err, exitCode)
	}
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if output.OK {
		fmt.Printf("validate ok: schema=%s\n", output.Schema)
		return exitCode
	}
	fmt.Printf("validate error: %s\n", output.Error)
	return exitCode
}

func printValidateUsage() {
	fmt.Println("Usage:")
	fmt.Println("  blip10 validate --in <path|-> [--schema <path>] [--jsonl] [--json] [--verbose] [--explain]")
}
