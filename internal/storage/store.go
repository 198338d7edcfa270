// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists is returned when a unique field is already taken.
	ErrAlreadyExists = errors.New("already exists")
)

// UserStore persists user accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
}

// GroupStore persists groups and their membership.
type GroupStore interface {
	// CreateGroup persists a group and its members in one transaction.
	// group.ID and group.Members are populated by the store.
	CreateGroup(ctx context.Context, group *models.Group, memberIDs []string) error

	// GetGroup retrieves a group with its members.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForUser returns the groups userID belongs to, without members.
	ListGroupsForUser(ctx context.Context, userID string) ([]*models.Group, error)

	// ListGroupMembers returns the group's current members ordered by username.
	ListGroupMembers(ctx context.Context, groupID string) ([]models.Member, error)

	IsGroupMember(ctx context.Context, groupID, userID string) (bool, error)
}

// LedgerStore is the append-only record of expenses and payments.
type LedgerStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error)

	CreatePayment(ctx context.Context, payment *models.Payment) error
	ListPaymentsByGroup(ctx context.Context, groupID string) ([]*models.Payment, error)
}

// Store combines every storage concern.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	UserStore
	GroupStore
	LedgerStore

	// Close releases any resources held by the store.
	Close() error
}
