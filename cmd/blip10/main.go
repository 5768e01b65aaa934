package main

import (
	"fmt"
	"os"
	"strings"
)

// version is stamped at release time via ldflags; default stays dev for local builds.
var version = "0.0.0-dev"

const (
	exitOK               = 0
	exitInternalFailure  = 1
	exitDecodeFailed     = 2
	exitValidationFailed = 3
	exitInvalidInput     = 6
)

func main() {
	os.Exit(run(os.Args))
}

func run(arguments []string) int {
	if len(arguments) < 2 {
		fmt.Println("blip10", version)
		return exitOK
	}
	if arguments[1] == "--explain" {
		return writeExplain("blip10 decodes, encodes and lints value-for-value boostagram records and splits payments across a value block.")
	}

	switch strings.TrimSpace(arguments[1]) {
	case "decode":
		return runDecode(arguments[2:])
	case "encode":
		return runEncode(arguments[2:])
	case "validate":
		return runValidate(arguments[2:])
	case "split":
		return runSplit(arguments[2:])
	case "version", "--version", "-v":
		if hasExplainFlag(arguments[2:]) {
			return writeExplain("Print the CLI version.")
		}
		fmt.Println("blip10", version)
		return exitOK
	case "help", "--help", "-h":
		printUsage()
		return exitOK
	default:
		printUsage()
		return exitInvalidInput
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  blip10 decode (--b64 <text>|--text <json>|--in <path|->) [--json] [--verbose] [--explain]")
	fmt.Println("  blip10 encode --in <path|-> [--json] [--verbose] [--explain]")
	fmt.Println("  blip10 validate --in <path|-> [--schema <path>] [--jsonl] [--json] [--verbose] [--explain]")
	fmt.Println("  blip10 split --amount <msat> [--config value.yaml] [--base <path>] [--podcast <title>] [--guid <guid>] [--message <text>] [--json] [--verbose] [--explain]")
	fmt.Println("  blip10 version")
}

func hasExplainFlag(arguments []string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == "--explain" {
			return true
		}
	}
	return false
}

func writeExplain(text string) int {
	fmt.Println(text)
	return exitOK
}
