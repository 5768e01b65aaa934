package errors

import (
	stderrors "errors"
	"testing"
)

func TestWrapRoundTrip(t *testing.T) {
	base := stderrors.New("boom")
	err := Wrap(base, CategoryIOFailure, "read_failed", "check file permissions", true)
	if err == nil {
		t.Fatal("expected wrapped error")
	}
	if CategoryOf(err) != CategoryIOFailure {
		t.Fatalf("unexpected category: %s", CategoryOf(err))
	}
	if CodeOf(err) != "read_failed" {
		t.Fatalf("unexpected code: %s", CodeOf(err))
	}
	if HintOf(err) != "check file permissions" {
		t.Fatalf("unexpected hint: %s", HintOf(err))
	}
	if !RetryableOf(err) {
		t.Fatal("expected retryable true")
	}
	if !stderrors.Is(err, base) {
		t.Fatal("expected wrapped error to preserve cause")
	}
	if err.Error() != "boom" {
		t.Fatalf("unexpected error text: %s", err.Error())
	}
}

func TestTerminalIsNeverRetryable(t *testing.T) {
	err := Terminal(stderrors.New("fee sum too large"), CategoryParameterInvalid, "fee_sum_exceeded", "lower fee percentages")
	if RetryableOf(err) {
		t.Fatal("terminal error must not be retryable")
	}
	if CategoryOf(err) != CategoryParameterInvalid {
		t.Fatalf("unexpected category: %s", CategoryOf(err))
	}
	if got := Terminal(nil, CategoryDecode, "decode_failed", ""); got != nil {
		t.Fatalf("expected nil for nil cause, got=%v", got)
	}
}

func TestUnknownErrorDefaults(t *testing.T) {
	err := stderrors.New("plain")
	if CategoryOf(err) != "" {
		t.Fatalf("unexpected category: %s", CategoryOf(err))
	}
	if CodeOf(err) != "" {
		t.Fatalf("unexpected code: %s", CodeOf(err))
	}
	if HintOf(err) != "" {
		t.Fatalf("unexpected hint: %s", HintOf(err))
	}
	if RetryableOf(err) {
		t.Fatal("unexpected retryable true")
	}
}

func TestWrapNilCauseReturnsNil(t *testing.T) {
	if got := Wrap(nil, CategoryInternalFailure, "internal_failure", "retry later", false); got != nil {
		t.Fatalf("expected nil wrapped error, got=%v", got)
	}
}

func TestClassifiedErrorNilCauseDefaults(t *testing.T) {
	err := &classifiedError{
		category: CategoryValidation,
		code:     "anchor_missing",
		hint:     "set podcast, feed id, url or guid",
	}
	if err.Error() != "unknown error" {
		t.Fatalf("unexpected nil-cause error text: %s", err.Error())
	}
	if err.Unwrap() != nil {
		t.Fatalf("expected unwrap nil for nil cause")
	}
	if err.Category() != CategoryValidation {
		t.Fatalf("unexpected category: %s", err.Category())
	}
	if err.Code() != "anchor_missing" {
		t.Fatalf("unexpected code: %s", err.Code())
	}
	if err.Hint() != "set podcast, feed id, url or guid" {
		t.Fatalf("unexpected hint: %s", err.Hint())
	}
	if err.Retryable() {
		t.Fatalf("expected retryable=false")
	}
}

func TestCategorySetIsStableAndUnique(t *testing.T) {
	categories := []Category{
		CategoryDecode,
		CategoryValidation,
		CategoryParameterInvalid,
		CategoryInvalidInput,
		CategoryIOFailure,
		CategoryInternalFailure,
	}
	seen := map[Category]struct{}{}
	for _, category := range categories {
		if category == "" {
			t.Fatalf("category must not be empty")
		}
		if _, exists := seen[category]; exists {
			t.Fatalf("duplicate category: %s", category)
		}
		seen[category] = struct{}{}
	}
	if len(seen) != 6 {
		t.Fatalf("expected 6 categories, got %d", len(seen))
	}
}
