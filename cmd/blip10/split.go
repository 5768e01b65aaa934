package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/Moooover/blip-10/core/boostagram"
	"github.com/Moooover/blip-10/core/valueblock"
)

type splitPayment struct {
	Name        string  `json:"name,omitempty"`
	Address     string  `json:"address"`
	CustomKey   *uint64 `json:"custom_key,omitempty"`
	CustomValue string  `json:"custom_value,omitempty"`
	Fee         bool    `json:"fee"`
	Split       uint32  `json:"split"`
	AmountMsat  uint64  `json:"amount_msat"`
	Skipped     bool    `json:"skipped,omitempty"`
	Boostagram  string  `json:"boostagram,omitempty"`
}

type splitOutput struct {
	OK            bool           `json:"ok"`
	Config        string         `json:"config,omitempty"`
	TotalMsat     uint64         `json:"total_msat,omitempty"`
	UUID          string         `json:"uuid,omitempty"`
	RemainderMsat uint64         `json:"remainder_msat"`
	Payments      []splitPayment `json:"payments,omitempty"`
	errorFields
}

func runSplit(arguments []string) int {
	if hasExplainFlag(arguments) {
		return writeExplain("Split a payment across the recipients of a value block and print one boostagram per recipient.")
	}
	flagSet := flag.NewFlagSet("split", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	var configPath string
	var amount uint64
	var basePath string
	var podcast string
	var guid string
	var message string
	var jsonOutput bool
	var verbose bool
	var helpFlag bool

	flagSet.StringVar(&configPath, "config", valueblock.DefaultPath, "value block yaml")
	flagSet.Uint64Var(&amount, "amount", 0, "total amount in millisatoshis")
	flagSet.StringVar(&basePath, "base", "", "base boostagram (json or base64) shared by every recipient")
	flagSet.StringVar(&podcast, "podcast", "", "podcast title for the base boostagram")
	flagSet.StringVar(&guid, "guid", "", "feed guid for the base boostagram")
	flagSet.StringVar(&message, "message", "", "boost message for the base boostagram")
	flagSet.BoolVar(&jsonOutput, "json", false, "emit JSON output")
	flagSet.BoolVar(&verbose, "verbose", false, "log debug detail to stderr")
	flagSet.BoolVar(&helpFlag, "help", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		return writeSplitOutput(jsonOutput, splitOutput{}, err, exitInvalidInput)
	}
	if helpFlag {
		printSplitUsage()
		return exitOK
	}
	if len(flagSet.Args()) > 0 {
		return writeSplitOutput(jsonOutput, splitOutput{}, fmt.Errorf("unexpected positional arguments"), exitInvalidInput)
	}
	logger := newLogger(verbose)

	configuration, err := valueblock.Load(configPath, false)
	if err != nil {
		return writeSplitOutput(jsonOutput, splitOutput{Config: configPath}, err, exitCodeForError(err, exitInvalidInput))
	}

	base := boostagram.Boostagram{}
	if strings.TrimSpace(basePath) != "" {
		data, err := readInput(basePath)
		if err != nil {
			return writeSplitOutput(jsonOutput, splitOutput{Config: configPath}, err, exitCodeForError(err, exitInvalidInput))
		}
		if looksLikeJSON(data) {
			base, err = boostagram.FromJSONBytes(data)
		} else {
			base, err = boostagram.FromBase64(strings.TrimSpace(string(data)))
		}
		if err != nil {
			return writeSplitOutput(jsonOutput, splitOutput{Config: configPath}, err, exitCodeForError(err, exitDecodeFailed))
		}
	}
	builder := boostagram.BuilderFrom(base)
	if strings.TrimSpace(podcast) != "" {
		builder.Podcast(podcast)
	}
	if strings.TrimSpace(guid) != "" {
		builder.GUID(guid)
	}
	if message != "" {
		builder.Message(message)
	}
	base, err = builder.Build()
	if err != nil {
		return writeSplitOutput(jsonOutput, splitOutput{Config: configPath}, err, exitCodeForError(err, exitValidationFailed))
	}

	distribution, err := valueblock.Distribute(configuration.Value, amount, base)
	if err != nil {
		return writeSplitOutput(jsonOutput, splitOutput{Config: configPath}, err, exitCodeForError(err, exitInvalidInput))
	}

	output := splitOutput{
		OK:            true,
		Config:        configPath,
		TotalMsat:     distribution.TotalMsat,
		UUID:          distribution.UUID,
		RemainderMsat: distribution.RemainderMsat,
		Payments:      make([]splitPayment, 0, len(distribution.Payments)),
	}
	for _, payment := range distribution.Payments {
		output.Payments = append(output.Payments, splitPayment{
			Name:        payment.Recipient.Name,
			Address:     payment.Recipient.Address,
			CustomKey:   payment.Recipient.CustomKey,
			CustomValue: payment.Recipient.CustomValue,
			Fee:         payment.Recipient.Fee,
			Split:       payment.Recipient.Split,
			AmountMsat:  payment.AmountMsat,
			Skipped:     payment.Skipped,
			Boostagram:  payment.Boostagram.ToBase64(),
		})
		logger.Debug("planned payment", "recipient", payment.Recipient.Name, "amount_msat", payment.AmountMsat, "skipped", payment.Skipped)
	}
	if distribution.RemainderMsat > 0 {
		logger.Info("payment not fully distributed", "remainder_msat", distribution.RemainderMsat)
	}
	return writeSplitOutput(jsonOutput, output, nil, exitOK)
}

func writeSplitOutput(jsonOutput bool, output splitOutput, err error, exitCode int) int {
	if err != nil {
		output.OK = false
		output.errorFields = errorFieldsFor(err, exitCode)
	}
	if jsonOutput {
		return writeJSONOutput(output, exitCode)
	}
	if !output.OK {
		fmt.Printf("split error: %s\n", output.Error)
		return exitCode
	}
	fmt.Printf("split ok: total_msat=%d uuid=%s remainder_msat=%d\n", output.TotalMsat, output.UUID, output.RemainderMsat)
	for _, payment := range output.Payments {
		status := "send"
		if payment.Skipped {
			status = "skip"
		}
		fmt.Printf("  %s %s address=%s split=%d fee=%t amount_msat=%d\n", status, valueOrDash(payment.Name), payment.Address, payment.Split, payment.Fee, payment.AmountMsat)
	}
	return exitCode
}

func printSplitUsage() {
	fmt.Println("Usage:")
	fmt.Println("  blip10 split --amount <msat> [--config value.yaml] [--base <path>] [--podcast <title>] [--guid <guid>] [--message <text>] [--json] [--verbose] [--explain]")
}
