package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Transfer is a suggested payment that moves a group towards zero balances.
type Transfer struct {
	FromID string // Person who owes
	ToID   string // Person who is owed
	Amount decimal.Decimal
}

type position struct {
	id     string
	amount decimal.Decimal // always positive
}

// SuggestSettlements turns net balances into a short list of transfers that
// would settle every balance to zero.
//
// Greedy: the largest debtor pays the largest creditor until one of them is
// settled, then the next in line takes over. Ties are broken by member id so
// the suggestion is stable for a given input. Balances must sum to zero, as
// returned by ComputeBalances.
func SuggestSettlements(balances []Balance) []Transfer {
	var debtors, creditors []position
	for _, b := range balances {
		switch b.Amount.Sign() {
		case -1:
			debtors = append(debtors, position{id: b.MemberID, amount: b.Amount.Neg()})
		case 1:
			creditors = append(creditors, position{id: b.MemberID, amount: b.Amount})
		}
	}
	sortPositions(debtors)
	sortPositions(creditors)

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := decimal.Min(debtors[i].amount, creditors[j].amount)

		transfers = append(transfers, Transfer{
			FromID: debtors[i].id,
			ToID:   creditors[j].id,
			Amount: amount,
		})

		debtors[i].amount = debtors[i].amount.Sub(amount)
		creditors[j].amount = creditors[j].amount.Sub(amount)

		if debtors[i].amount.IsZero() {
			i++
		}
		if creditors[j].amount.IsZero() {
			j++
		}
	}

	return transfers
}

// sortPositions orders largest amount first, then by id.
func sortPositions(ps []position) {
	sort.Slice(ps, func(a, b int) bool {
		if c := ps[a].amount.Cmp(ps[b].amount); c != 0 {
			return c > 0
		}
		return ps[a].id < ps[b].id
	})
}
