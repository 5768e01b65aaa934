package valueblock

import (
	"github.com/google/uuid"

	"github.com/Moooover/blip-10/core/boostagram"
	"github.com/Moooover/blip-10/core/split"
)

type Payment struct {
	Recipient  Recipient
	AmountMsat uint64
	// Skipped is set when the recipient's payout floors to zero and nothing
	// should be sent.
	Skipped    bool
	Boostagram boostagram.Boostagram
}

type Distribution struct {
	TotalMsat     uint64
	UUID          string
	Payments      []Payment
	RemainderMsat uint64
}

// Distribute splits totalMsat over the block's recipients and derives one
// record per recipient from base. Every derived record carries the recipient
// name, its own value_msat, the shared value_msat_total and a uuid common to
// the whole payment.
func Distribute(block Block, totalMsat uint64, base boostagram.Boostagram) (Distribution, error) {
	if err := block.Validate(); err != nil {
		return Distribution{}, err
	}
	if _, err := boostagram.BuilderFrom(base).Build(); err != nil {
		return Distribution{}, err
	}

	entries := make([]split.Entry, len(block.Recipients))
	for index, recipient := range block.Recipients {
		entries[index] = split.Entry{Percentage: recipient.Split, Fee: recipient.Fee}
	}
	payouts, err := split.Calculate(entries, totalMsat)
	if err != nil {
		return Distribution{}, err
	}

	paymentID := uuid.NewString()
	if base.UUID != nil && *base.UUID != "" {
		paymentID = *base.UUID
	}

	payments := make([]Payment, len(block.Recipients))
	for index, recipient := range block.Recipients {
		builder := boostagram.BuilderFrom(base).
			ValueMsat(payouts[index]).
			ValueMsatTotal(totalMsat).
			UUID(paymentID)
		if recipient.Name != "" {
			builder.Name(recipient.Name)
		}
		record, err := builder.Build()
		if err != nil {
			return Distribution{}, err
		}
		payments[index] = Payment{
			Recipient:  recipient,
			AmountMsat: payouts[index],
			Skipped:    payouts[index] == 0,
			Boostagram: record,
		}
	}

	return Distribution{
		TotalMsat:     totalMsat,
		UUID:          paymentID,
		Payments:      payments,
		RemainderMsat: split.Remainder(totalMsat, payouts),
	}, nil
}
