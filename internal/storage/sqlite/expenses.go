package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// CreateExpense appends an expense to the group's ledger.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, paid_by, amount_cents, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.PaidBy,
		models.ToMinorUnits(expense.Amount), expense.Description, expense.CreatedAt,
	)
	if isForeignKeyViolation(err) {
		return fmt.Errorf("expense references unknown group or user: %w", storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	return nil
}

// ListExpensesByGroup retrieves all expenses for a group, newest first,
// with the payer's username filled in.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT e.id, e.group_id, e.paid_by, u.username, e.amount_cents, e.description, e.created_at
		 FROM expenses e JOIN users u ON e.paid_by = u.id
		 WHERE e.group_id = ?
		 ORDER BY e.created_at DESC, e.rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by group: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var cents int64
		if err := rows.Scan(&expense.ID, &expense.GroupID, &expense.PaidBy, &expense.PaidByUsername,
			&cents, &expense.Description, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.Amount = models.FromMinorUnits(cents)
		expenses = append(expenses, expense)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}
