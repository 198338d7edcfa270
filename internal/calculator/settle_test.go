package calculator

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestSettlements(t *testing.T) {
	t.Run("one debtor one creditor", func(t *testing.T) {
		transfers := SuggestSettlements([]Balance{
			{MemberID: "a", Amount: amt("30.00")},
			{MemberID: "b", Amount: decimal.Zero},
			{MemberID: "c", Amount: amt("-30.00")},
		})
		require.Len(t, transfers, 1)
		assert.Equal(t, "c", transfers[0].FromID)
		assert.Equal(t, "a", transfers[0].ToID)
		assertAmount(t, "30.00", transfers[0].Amount)
	})

	t.Run("ties broken by id", func(t *testing.T) {
		transfers := SuggestSettlements([]Balance{
			{MemberID: "a", Amount: amt("66.66")},
			{MemberID: "c", Amount: amt("-33.33")},
			{MemberID: "b", Amount: amt("-33.33")},
		})
		require.Len(t, transfers, 2)
		assert.Equal(t, "b", transfers[0].FromID)
		assert.Equal(t, "c", transfers[1].FromID)
		for _, tr := range transfers {
			assert.Equal(t, "a", tr.ToID)
			assertAmount(t, "33.33", tr.Amount)
		}
	})

	t.Run("all settled", func(t *testing.T) {
		assert.Empty(t, SuggestSettlements([]Balance{
			{MemberID: "a", Amount: decimal.Zero},
			{MemberID: "b", Amount: decimal.Zero},
		}))
	})
}

func TestSuggestSettlements_ZeroesBalances(t *testing.T) {
	members := []Member{alice, bob, charlie, {ID: "d", Name: "Diana"}}
	expenses := []ExpenseForBalance{
		{ID: "e1", PayerID: "a", Amount: amt("120.00")},
		{ID: "e2", PayerID: "b", Amount: amt("45.50")},
		{ID: "e3", PayerID: "a", Amount: amt("10.01")},
	}

	balances, err := ComputeBalances(members, expenses, nil)
	require.NoError(t, err)

	var payments []PaymentForBalance
	for i, tr := range SuggestSettlements(balances) {
		assert.True(t, tr.Amount.IsPositive())
		payments = append(payments, PaymentForBalance{
			ID:     fmt.Sprintf("p%d", i),
			FromID: tr.FromID,
			ToID:   tr.ToID,
			Amount: tr.Amount,
		})
	}

	settled, err := ComputeBalances(members, expenses, payments)
	require.NoError(t, err)
	for _, b := range settled {
		assert.True(t, b.Amount.IsZero(), "%s still at %s", b.MemberID, b.Amount)
	}
}
