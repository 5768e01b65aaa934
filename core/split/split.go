package split

import (
	stderrors "errors"
	"fmt"
	"math/big"

	coreerrors "github.com/Moooover/blip-10/core/errors"
)

var ErrParameterInvalid = stderrors.New("split parameter invalid")

// Entry is one recipient's share of a payment. Fee entries take their
// percentage off the total first; share entries divide what is left in
// proportion to their percentages.
type Entry struct {
	Percentage uint32
	Fee        bool
}

// Calculate returns one payout per entry, in entry order. Payouts are floored
// and never sum to more than totalMsat; the floored remainder is not
// redistributed.
//
// When no share percentages are defined, share entries get nothing and the
// amount left after fees stays undistributed.
func Calculate(entries []Entry, totalMsat uint64) ([]uint64, error) {
	var feeSum, shareSum uint64
	for _, entry := range entries {
		if entry.Fee {
			feeSum += uint64(entry.Percentage)
		} else {
			shareSum += uint64(entry.Percentage)
		}
	}
	if feeSum > 100 {
		return nil, coreerrors.Terminal(
			fmt.Errorf("%w: fee percentages sum to %d, above 100", ErrParameterInvalid, feeSum),
			coreerrors.CategoryParameterInvalid,
			"fee_sum_exceeded",
			"lower fee percentages so they sum to at most 100",
		)
	}
	remaining := 100 - feeSum

	total := new(big.Int).SetUint64(totalMsat)
	hundred := big.NewInt(100)
	shareDivisor := new(big.Int).Mul(new(big.Int).SetUint64(shareSum), hundred)

	payouts := make([]uint64, len(entries))
	for index, entry := range entries {
		amount := new(big.Int).Mul(total, new(big.Int).SetUint64(uint64(entry.Percentage)))
		switch {
		case entry.Fee:
			amount.Quo(amount, hundred)
		case shareSum > 0:
			amount.Mul(amount, new(big.Int).SetUint64(remaining))
			amount.Quo(amount, shareDivisor)
		default:
			amount.SetUint64(0)
		}
		payouts[index] = amount.Uint64()
	}
	return payouts, nil
}

func Sum(payouts []uint64) uint64 {
	var total uint64
	for _, payout := range payouts {
		total += payout
	}
	return total
}

// Remainder is the part of totalMsat the payouts leave undistributed.
func Remainder(totalMsat uint64, payouts []uint64) uint64 {
	distributed := Sum(payouts)
	if distributed >= totalMsat {
		return 0
	}
	return totalMsat - distributed
}
