package valueblock

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"

	coreerrors "github.com/Moooover/blip-10/core/errors"
)

const DefaultPath = "value.yaml"

type Config struct {
	Value Block `yaml:"value"`
}

// Block is the list of recipients a feed publishes for value-for-value
// payments.
type Block struct {
	Type       string      `yaml:"type"`
	Method     string      `yaml:"method"`
	Suggested  string      `yaml:"suggested"`
	Recipients []Recipient `yaml:"recipients"`
}

type Recipient struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Address     string  `yaml:"address"`
	CustomKey   *uint64 `yaml:"custom_key"`
	CustomValue string  `yaml:"custom_value"`
	Split       uint32  `yaml:"split"`
	Fee         bool    `yaml:"fee"`
}

func Load(path string, allowMissing bool) (Config, error) {
	trimmedPath := strings.TrimSpace(path)
	if trimmedPath == "" {
		return Config{}, invalidInput(fmt.Errorf("value block config path is required"))
	}

	// #nosec G304 -- config path is explicit local user input.
	content, err := os.ReadFile(trimmedPath)
	if err != nil {
		if os.IsNotExist(err) && allowMissing {
			return Config{}, nil
		}
		return Config{}, coreerrors.Terminal(fmt.Errorf("read value block config: %w", err), coreerrors.CategoryIOFailure, "config_read_failed", "check the config path and permissions")
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return Config{}, nil
	}

	var configuration Config
	if err := yaml.Unmarshal(content, &configuration); err != nil {
		return Config{}, invalidInput(fmt.Errorf("parse value block config: %w", err))
	}
	configuration.normalize()
	return configuration, nil
}

func (configuration *Config) normalize() {
	configuration.Value.Type = strings.ToLower(strings.TrimSpace(configuration.Value.Type))
	configuration.Value.Method = strings.ToLower(strings.TrimSpace(configuration.Value.Method))
	configuration.Value.Suggested = strings.TrimSpace(configuration.Value.Suggested)
	for index := range configuration.Value.Recipients {
		recipient := &configuration.Value.Recipients[index]
		recipient.Name = strings.TrimSpace(recipient.Name)
		recipient.Type = strings.ToLower(strings.TrimSpace(recipient.Type))
		recipient.Address = strings.TrimSpace(recipient.Address)
		recipient.CustomValue = strings.TrimSpace(recipient.CustomValue)
	}
}

func (configuration Config) Validate() error {
	return configuration.Value.Validate()
}

// Validate checks the recipient list is usable. Percentage limits are left to
// the split calculator.
func (block Block) Validate() error {
	if len(block.Recipients) == 0 {
		return invalidInput(fmt.Errorf("value block has no recipients"))
	}
	for index, recipient := range block.Recipients {
		if recipient.Address == "" {
			return invalidInput(fmt.Errorf("recipient %d (%s): address is required", index, recipient.Name))
		}
	}
	return nil
}

func invalidInput(cause error) error {
	return coreerrors.Terminal(cause, coreerrors.CategoryInvalidInput, "invalid_value_block", "check the value block recipients and percentages")
}
