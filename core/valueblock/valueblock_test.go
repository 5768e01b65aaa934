package valueblock

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Moooover/blip-10/core/boostagram"
	coreerrors "github.com/Moooover/blip-10/core/errors"
	"github.com/Moooover/blip-10/core/split"
)

const sampleConfig = `
value:
  type: " Lightning "
  method: " KEYSEND "
  suggested: " 0.00000005000 "
  recipients:
    - name: " Host "
      type: " Node "
      address: " 02d5c1bf8b940dc9cadca86d1b0a3c37fbe39cee4c7e839e33bef9174531d27f52 "
      custom_key: 7629169
      custom_value: " podcastid "
      split: 90
    - name: "Podcastindex.org"
      type: node
      address: 03ae9f91a0cb8ff43840e3c322c4c61f019d8c1c3cea15a25cfc425ac605e61a4a
      split: 10
      fee: true
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "value.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	configuration, err := Load(writeConfig(t, sampleConfig), false)
	if err != nil {
		t.Fatalf("Load parse: %v", err)
	}
	if configuration.Value.Type != "lightning" || configuration.Value.Method != "keysend" {
		t.Fatalf("unexpected block normalization: %+v", configuration.Value)
	}
	if configuration.Value.Suggested != "0.00000005000" {
		t.Fatalf("unexpected suggested: %q", configuration.Value.Suggested)
	}
	if len(configuration.Value.Recipients) != 2 {
		t.Fatalf("expected 2 recipients, got %d", len(configuration.Value.Recipients))
	}
	host := configuration.Value.Recipients[0]
	if host.Name != "Host" || host.Type != "node" || host.CustomValue != "podcastid" {
		t.Fatalf("unexpected recipient normalization: %+v", host)
	}
	if host.Address != "02d5c1bf8b940dc9cadca86d1b0a3c37fbe39cee4c7e839e33bef9174531d27f52" {
		t.Fatalf("unexpected address: %q", host.Address)
	}
	if host.CustomKey == nil || *host.CustomKey != 7629169 {
		t.Fatalf("unexpected custom key: %v", host.CustomKey)
	}
	if host.Split != 90 || host.Fee {
		t.Fatalf("unexpected host split: %+v", host)
	}
	if !configuration.Value.Recipients[1].Fee {
		t.Fatal("expected fee recipient")
	}
	if err := configuration.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadAllowMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	configuration, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load allow missing: %v", err)
	}
	if len(configuration.Value.Recipients) != 0 {
		t.Fatalf("expected empty configuration, got %+v", configuration)
	}
	if _, err := Load(path, false); coreerrors.CategoryOf(err) != coreerrors.CategoryIOFailure {
		t.Fatalf("expected io failure for missing required config, got %v", err)
	}
}

func TestLoadRejectsInvalidInput(t *testing.T) {
	if _, err := Load("  ", false); coreerrors.CategoryOf(err) != coreerrors.CategoryInvalidInput {
		t.Fatalf("expected invalid input for empty path, got %v", err)
	}
	path := writeConfig(t, "value:\n  recipients:\n    - split: -5\n")
	if _, err := Load(path, false); coreerrors.CategoryOf(err) != coreerrors.CategoryInvalidInput {
		t.Fatalf("expected invalid input for negative split, got %v", err)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	configuration, err := Load(writeConfig(t, "  \n"), false)
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if err := configuration.Validate(); err == nil {
		t.Fatal("expected empty configuration to fail validation")
	}
}

func TestValidateRequiresAddress(t *testing.T) {
	block := Block{Recipients: []Recipient{{Name: "host", Split: 100}}}
	if err := block.Validate(); coreerrors.CodeOf(err) != "invalid_value_block" {
		t.Fatalf("expected invalid_value_block, got %v", err)
	}
}

func TestDistribute(t *testing.T) {
	configuration, err := Load(writeConfig(t, sampleConfig), false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	base, err := boostagram.NewBuilder().
		Podcast("Podcasting 2.0").
		FeedID(920666).
		Action(boostagram.ActionBoost).
		Message("row of ducks").
		Build()
	if err != nil {
		t.Fatalf("build base: %v", err)
	}

	distribution, err := Distribute(configuration.Value, 21000, base)
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if distribution.UUID == "" {
		t.Fatal("expected generated uuid")
	}
	if len(distribution.Payments) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(distribution.Payments))
	}
	host := distribution.Payments[0]
	fee := distribution.Payments[1]
	if host.AmountMsat != 18900 || fee.AmountMsat != 2100 {
		t.Fatalf("unexpected amounts: host=%d fee=%d", host.AmountMsat, fee.AmountMsat)
	}
	if distribution.RemainderMsat != 0 {
		t.Fatalf("unexpected remainder: %d", distribution.RemainderMsat)
	}
	for _, payment := range distribution.Payments {
		record := payment.Boostagram
		if record.UUID == nil || *record.UUID != distribution.UUID {
			t.Fatalf("expected shared uuid, got %v", record.UUID)
		}
		if record.ValueMsat == nil || *record.ValueMsat != payment.AmountMsat {
			t.Fatalf("value_msat does not match payout: %v vs %d", record.ValueMsat, payment.AmountMsat)
		}
		if record.ValueMsatTotal == nil || *record.ValueMsatTotal != 21000 {
			t.Fatalf("unexpected value_msat_total: %v", record.ValueMsatTotal)
		}
		if record.Name == nil || *record.Name != payment.Recipient.Name {
			t.Fatalf("unexpected name: %v", record.Name)
		}
		if *record.Message != "row of ducks" {
			t.Fatalf("base fields lost: %+v", record)
		}
		decoded, err := boostagram.FromBase64(record.ToBase64())
		if err != nil {
			t.Fatalf("decode derived record: %v", err)
		}
		if *decoded.ValueMsat != payment.AmountMsat {
			t.Fatalf("derived record does not round trip")
		}
	}
	if base.UUID != nil || base.ValueMsat != nil {
		t.Fatal("Distribute mutated the base record")
	}
}

func TestDistributeKeepsBaseUUIDAndMarksSkipped(t *testing.T) {
	base, err := boostagram.NewBuilder().GUID("feed-guid").UUID("fixed-uuid").Build()
	if err != nil {
		t.Fatalf("build base: %v", err)
	}
	block := Block{Recipients: []Recipient{
		{Name: "host", Address: "a", Split: 99},
		{Name: "tiny", Address: "b", Split: 1},
	}}
	distribution, err := Distribute(block, 50, base)
	if err != nil {
		t.Fatalf("Distribute: %v", err)
	}
	if distribution.UUID != "fixed-uuid" {
		t.Fatalf("expected base uuid, got %s", distribution.UUID)
	}
	if distribution.Payments[0].AmountMsat != 49 || distribution.Payments[0].Skipped {
		t.Fatalf("unexpected host payment: %+v", distribution.Payments[0])
	}
	if distribution.Payments[1].AmountMsat != 0 || !distribution.Payments[1].Skipped {
		t.Fatalf("expected tiny payment skipped: %+v", distribution.Payments[1])
	}
	if distribution.RemainderMsat != 1 {
		t.Fatalf("unexpected remainder: %d", distribution.RemainderMsat)
	}
}

func TestDistributeErrors(t *testing.T) {
	anchored, err := boostagram.NewBuilder().URL("https://example.com/rss").Build()
	if err != nil {
		t.Fatalf("build base: %v", err)
	}
	overFee := Block{Recipients: []Recipient{
		{Name: "a", Address: "a", Split: 60, Fee: true},
		{Name: "b", Address: "b", Split: 50, Fee: true},
	}}
	if _, err := Distribute(overFee, 1000, anchored); !stderrors.Is(err, split.ErrParameterInvalid) {
		t.Fatalf("expected ErrParameterInvalid, got %v", err)
	}

	unanchored, err := boostagram.FromJSON(`{"message":"hi"}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	valid := Block{Recipients: []Recipient{{Name: "a", Address: "a", Split: 100}}}
	if _, err := Distribute(valid, 1000, unanchored); !stderrors.Is(err, boostagram.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := Distribute(Block{}, 1000, anchored); coreerrors.CategoryOf(err) != coreerrors.CategoryInvalidInput {
		t.Fatalf("expected invalid input for empty block, got %v", err)
	}
}
