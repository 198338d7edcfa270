package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CurrencyScale is the number of decimal places in every share.
const CurrencyScale = 2

// SplitEvenly divides total into one share per member so that the shares
// add up to total exactly.
//
// Each member gets total/n truncated to the cent. The leftover cents (fewer
// than n) go one each to the members with the lowest ids, so the result
// depends only on the set of ids and not on their order.
//
// total must be non-negative with at most CurrencyScale decimal places.
func SplitEvenly(total decimal.Decimal, memberIDs []string) map[string]decimal.Decimal {
	shares := make(map[string]decimal.Decimal, len(memberIDs))
	if len(memberIDs) == 0 {
		return shares
	}

	cents := total.Shift(CurrencyScale)
	q, r := cents.QuoRem(decimal.NewFromInt(int64(len(memberIDs))), 0)
	base := q.Shift(-CurrencyScale)
	oneCent := decimal.New(1, -CurrencyScale)

	ordered := make([]string, len(memberIDs))
	copy(ordered, memberIDs)
	sort.Strings(ordered)

	extra := r.IntPart()
	for i, id := range ordered {
		if int64(i) < extra {
			shares[id] = base.Add(oneCent)
		} else {
			shares[id] = base
		}
	}
	return shares
}
