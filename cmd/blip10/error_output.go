package main

import (
	"encoding/json"
	"fmt"
	"strings"

	coreerrors "github.com/Moooover/blip-10/core/errors"
)

// errorFields is embedded in every command output so JSON consumers see the
// same error envelope regardless of command.
type errorFields struct {
	Error         string `json:"error,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	ErrorCategory string `json:"error_category,omitempty"`
	Retryable     *bool  `json:"retryable,omitempty"`
	Hint          string `json:"hint,omitempty"`
}

func errorFieldsFor(err error, exitCode int) errorFields {
	if err == nil {
		return errorFields{}
	}
	category := coreerrors.CategoryOf(err)
	if category == "" {
		category = defaultErrorCategory(exitCode)
	}
	code := coreerrors.CodeOf(err)
	if code == "" {
		code = string(category)
	}
	hint := coreerrors.HintOf(err)
	if strings.TrimSpace(hint) == "" {
		hint = defaultHint(exitCode)
	}
	retryable := coreerrors.RetryableOf(err)
	return errorFields{
		Error:         err.Error(),
		ErrorCode:     code,
		ErrorCategory: string(category),
		Retryable:     &retryable,
		Hint:          hint,
	}
}

func exitCodeForError(err error, fallbackExit int) int {
	if err == nil {
		return exitOK
	}
	switch coreerrors.CategoryOf(err) {
	case coreerrors.CategoryDecode:
		return exitDecodeFailed
	case coreerrors.CategoryValidation:
		return exitValidationFailed
	case coreerrors.CategoryParameterInvalid, coreerrors.CategoryInvalidInput:
		return exitInvalidInput
	case coreerrors.CategoryIOFailure, coreerrors.CategoryInternalFailure:
		return exitInternalFailure
	}
	return fallbackExit
}

func defaultErrorCategory(exitCode int) coreerrors.Category {
	switch exitCode {
	case exitDecodeFailed:
		return coreerrors.CategoryDecode
	case exitValidationFailed:
		return coreerrors.CategoryValidation
	case exitInvalidInput:
		return coreerrors.CategoryInvalidInput
	default:
		return coreerrors.CategoryInternalFailure
	}
}

func defaultHint(exitCode int) string {
	switch exitCode {
	case exitDecodeFailed:
		return "check the payload encoding and field types"
	case exitValidationFailed:
		return "set at least one of podcast, feed id, url or guid"
	case exitInvalidInput:
		return "check command usage and input"
	default:
		return "retry after checking local environment"
	}
}

func writeJSONOutput(output any, exitCode int) int {
	encoded, err := json.Marshal(output)
	if err != nil {
		fmt.Println(`{"ok":false,"error":"failed to encode output","error_code":"encode_failed","error_category":"internal_failure","retryable":false}`)
		return exitInternalFailure
	}
	fmt.Println(string(encoded))
	return exitCode
}
