package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/membership"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

func TestToConnectError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"validation", &models.ValidationError{Field: "amount", Message: "must be greater than 0"}, connect.CodeInvalidArgument},
		{"weak password", auth.ErrWeakPassword, connect.CodeInvalidArgument},
		{"not a member", &membership.NotAMemberError{GroupID: "g", UserID: "u"}, connect.CodePermissionDenied},
		{"bad credentials", auth.ErrInvalidCredentials, connect.CodeUnauthenticated},
		{"not found", fmt.Errorf("group g: %w", storage.ErrNotFound), connect.CodeNotFound},
		{"already exists", fmt.Errorf("user: %w", storage.ErrAlreadyExists), connect.CodeAlreadyExists},
		{"email exists", auth.ErrEmailExists, connect.CodeAlreadyExists},
		{"empty group", calculator.ErrEmptyGroup, connect.CodeFailedPrecondition},
		{"referential integrity", &calculator.ReferentialIntegrityError{Kind: calculator.EntryExpense, EntryID: "e", MemberID: "x"}, connect.CodeDataLoss},
		{"self payment", &calculator.SelfPaymentError{PaymentID: "p", MemberID: "a"}, connect.CodeDataLoss},
		{"unbalanced", fmt.Errorf("%w: off by 0.01", calculator.ErrUnbalanced), connect.CodeDataLoss},
		{"passthrough", connect.NewError(connect.CodeResourceExhausted, errors.New("slow down")), connect.CodeResourceExhausted},
		{"unknown", errors.New("disk on fire"), connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toConnectError(tt.err).Code(); got != tt.want {
				t.Errorf("toConnectError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

// fakeLedger serves a fixed snapshot, failing the reads named in fail.
type fakeLedger struct {
	snap ledgerSnapshot
	fail map[string]error
}

func (f *fakeLedger) ListGroupMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	if err := f.fail["members"]; err != nil {
		return nil, err
	}
	return f.snap.Members, nil
}

func (f *fakeLedger) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if err := f.fail["expenses"]; err != nil {
		return nil, err
	}
	return f.snap.Expenses, nil
}

func (f *fakeLedger) ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error) {
	if err := f.fail["payments"]; err != nil {
		return nil, err
	}
	return f.snap.Payments, nil
}

func TestLoadLedger(t *testing.T) {
	ledger := &fakeLedger{snap: ledgerSnapshot{
		Members: []models.Member{{UserID: "a", Username: "alice"}, {UserID: "b", Username: "bob"}},
		Expenses: []*models.Expense{
			{ID: "e1", PaidBy: "a", Amount: models.FromMinorUnits(1000)},
			{ID: "e2", PaidBy: "b", Amount: models.FromMinorUnits(250)},
		},
		Payments: []*models.Payment{{ID: "p1", FromUserID: "b", ToUserID: "a", Amount: models.FromMinorUnits(100)}},
	}}

	snap, err := loadLedger(context.Background(), ledger, "g")
	if err != nil {
		t.Fatalf("loadLedger failed: %v", err)
	}
	if len(snap.members()) != 2 || len(snap.expenses()) != 2 || len(snap.payments()) != 1 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if got := snap.total().String(); got != "12.5" {
		t.Errorf("total = %s, want 12.5", got)
	}
	if p := snap.payments()[0]; p.FromID != "b" || p.ToID != "a" {
		t.Errorf("payment endpoints not carried over: %+v", p)
	}
}

func TestLoadLedger_Error(t *testing.T) {
	boom := errors.New("boom")
	for _, read := range []string{"members", "expenses", "payments"} {
		t.Run(read, func(t *testing.T) {
			ledger := &fakeLedger{fail: map[string]error{read: boom}}
			if _, err := loadLedger(context.Background(), ledger, "g"); !errors.Is(err, boom) {
				t.Errorf("expected wrapped boom, got %v", err)
			}
		})
	}
}
