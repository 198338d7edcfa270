package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Member is a group member as needed for balance calculations.
type Member struct {
	ID   string
	Name string
}

// ExpenseForBalance represents an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	ID      string
	PayerID string
	Amount  decimal.Decimal
}

// PaymentForBalance represents a payment with the minimal information needed for balance calculations.
type PaymentForBalance struct {
	ID     string
	FromID string // Who paid (debtor settling up)
	ToID   string // Who received (creditor being paid)
	Amount decimal.Decimal
}

// Balance is one member's net position in the group.
type Balance struct {
	MemberID string
	Name     string
	Amount   decimal.Decimal // Positive = owed money, Negative = owes money
	Paid     decimal.Decimal // Total of expenses this member paid
	Sent     decimal.Decimal // Total of payments this member made
	Received decimal.Decimal // Total of payments this member received
	Share    decimal.Decimal // This member's equal share of all expenses
}

// ComputeBalances reconciles a group's expenses and payments into one net
// balance per member.
//
// Algorithm:
//   - total = sum of all expenses, split evenly across members (see SplitEvenly)
//   - balance = paid + sent - received - share
//
// Balances are returned in the order of members and always sum to zero.
// Every expense payer and payment endpoint must be in members; otherwise a
// *ReferentialIntegrityError is returned and no balances are produced.
func ComputeBalances(members []Member, expenses []ExpenseForBalance, payments []PaymentForBalance) ([]Balance, error) {
	if len(members) == 0 {
		return nil, ErrEmptyGroup
	}

	index := make(map[string]int, len(members))
	ids := make([]string, len(members))
	balances := make([]Balance, len(members))
	for i, m := range members {
		if _, dup := index[m.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMember, m.ID)
		}
		index[m.ID] = i
		ids[i] = m.ID
		balances[i] = Balance{
			MemberID: m.ID,
			Name:     m.Name,
			Amount:   decimal.Zero,
			Paid:     decimal.Zero,
			Sent:     decimal.Zero,
			Received: decimal.Zero,
		}
	}

	total := decimal.Zero
	for _, e := range expenses {
		if !validEntryAmount(e.Amount) {
			return nil, &InvalidAmountError{Kind: EntryExpense, EntryID: e.ID, Amount: e.Amount}
		}
		i, ok := index[e.PayerID]
		if !ok {
			return nil, &ReferentialIntegrityError{Kind: EntryExpense, EntryID: e.ID, MemberID: e.PayerID}
		}
		balances[i].Paid = balances[i].Paid.Add(e.Amount)
		total = total.Add(e.Amount)
	}

	for _, p := range payments {
		if !validEntryAmount(p.Amount) {
			return nil, &InvalidAmountError{Kind: EntryPayment, EntryID: p.ID, Amount: p.Amount}
		}
		if p.FromID == p.ToID {
			return nil, &SelfPaymentError{PaymentID: p.ID, MemberID: p.FromID}
		}
		from, ok := index[p.FromID]
		if !ok {
			return nil, &ReferentialIntegrityError{Kind: EntryPayment, EntryID: p.ID, MemberID: p.FromID}
		}
		to, ok := index[p.ToID]
		if !ok {
			return nil, &ReferentialIntegrityError{Kind: EntryPayment, EntryID: p.ID, MemberID: p.ToID}
		}
		balances[from].Sent = balances[from].Sent.Add(p.Amount)
		balances[to].Received = balances[to].Received.Add(p.Amount)
	}

	shares := SplitEvenly(total, ids)
	sum := decimal.Zero
	for i := range balances {
		b := &balances[i]
		b.Share = shares[b.MemberID]
		b.Amount = b.Paid.Add(b.Sent).Sub(b.Received).Sub(b.Share)
		sum = sum.Add(b.Amount)
	}

	if !sum.IsZero() {
		return nil, fmt.Errorf("%w: off by %s", ErrUnbalanced, sum)
	}

	return balances, nil
}

func validEntryAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Truncate(CurrencyScale))
}
