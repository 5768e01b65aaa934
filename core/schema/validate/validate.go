package validate

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sync"

	"github.com/kaptinlin/jsonschema"
)

//go:embed schemas/boostagram.schema.json
var boostagramSchemaJSON []byte

var boostagramSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return compileSchema(boostagramSchemaJSON)
})

// BoostagramSchema returns the embedded wire schema document.
func BoostagramSchema() []byte {
	return bytes.Clone(boostagramSchemaJSON)
}

// ValidateBoostagramJSON lints one structured-text payload against the
// embedded schema. The codec does not depend on this check.
func ValidateBoostagramJSON(data []byte) error {
	schema, err := boostagramSchema()
	if err != nil {
		return err
	}
	return validateJSON(schema, data)
}

// ValidateBoostagramJSONL lints newline-delimited payloads, such as an export
// of received boosts.
func ValidateBoostagramJSONL(data []byte) error {
	schema, err := boostagramSchema()
	if err != nil {
		return err
	}
	return validateJSONL(schema, data)
}

func ValidateJSONFile(schemaPath, jsonPath string) error {
	schema, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}
	// #nosec G304 -- json path is explicit local user input.
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("read json: %w", err)
	}
	return validateJSON(schema, data)
}

func ValidateJSON(schemaPath string, data []byte) error {
	schema, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}
	return validateJSON(schema, data)
}

func ValidateJSONL(schemaPath string, data []byte) error {
	schema, err := loadSchema(schemaPath)
	if err != nil {
		return err
	}
	return validateJSONL(schema, data)
}

func loadSchema(schemaPath string) (*jsonschema.Schema, error) {
	// #nosec G304 -- schema path is explicit local user input.
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return compileSchema(data)
}

func compileSchema(data []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	schema, err := compiler.Compile(data)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

func validateJSON(schema *jsonschema.Schema, data []byte) error {
	result := schema.ValidateJSON(data)
	if result.IsValid() {
		return nil
	}
	return fmt.Errorf("schema validation failed: %v", result.Errors)
}

func validateJSONL(schema *jsonschema.Schema, data []byte) error {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 {
			continue
		}
		if err := validateJSON(schema, b); err != nil {
			return fmt.Errorf("jsonl line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read jsonl: %w", err)
	}
	return nil
}
