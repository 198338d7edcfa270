package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// ledgerReader is the read side of the store needed to compute balances.
type ledgerReader interface {
	ListGroupMembers(ctx context.Context, groupID string) ([]models.Member, error)
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)
	ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error)
}

// ledgerSnapshot is a group's members and full ledger as read for one query.
type ledgerSnapshot struct {
	Members  []models.Member
	Expenses []*models.Expense
	Payments []*models.Payment
}

// loadLedger reads members, expenses and payments concurrently. The first
// failure cancels the other reads.
func loadLedger(ctx context.Context, store ledgerReader, groupID string) (*ledgerSnapshot, error) {
	snap := &ledgerSnapshot{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		members, err := store.ListGroupMembers(ctx, groupID)
		if err != nil {
			return fmt.Errorf("failed to load members: %w", err)
		}
		snap.Members = members
		return nil
	})
	g.Go(func() error {
		expenses, err := store.ListExpensesByGroup(ctx, groupID)
		if err != nil {
			return fmt.Errorf("failed to load expenses: %w", err)
		}
		snap.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		payments, err := store.ListPaymentsByGroup(ctx, groupID)
		if err != nil {
			return fmt.Errorf("failed to load payments: %w", err)
		}
		snap.Payments = payments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *ledgerSnapshot) members() []calculator.Member {
	out := make([]calculator.Member, len(s.Members))
	for i, m := range s.Members {
		out[i] = calculator.Member{ID: m.UserID, Name: m.Username}
	}
	return out
}

func (s *ledgerSnapshot) expenses() []calculator.ExpenseForBalance {
	out := make([]calculator.ExpenseForBalance, len(s.Expenses))
	for i, e := range s.Expenses {
		out[i] = calculator.ExpenseForBalance{ID: e.ID, PayerID: e.PaidBy, Amount: e.Amount}
	}
	return out
}

func (s *ledgerSnapshot) payments() []calculator.PaymentForBalance {
	out := make([]calculator.PaymentForBalance, len(s.Payments))
	for i, p := range s.Payments {
		out[i] = calculator.PaymentForBalance{ID: p.ID, FromID: p.FromUserID, ToID: p.ToUserID, Amount: p.Amount}
	}
	return out
}

func (s *ledgerSnapshot) total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}
