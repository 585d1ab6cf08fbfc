// Package store defines the destination database operations used by the
// migration and provides Postgres and in-memory implementations.
package store

import (
	"context"

	"github.com/JoelSantos-JS/alidash-migrate/internal/model"
)

// Store is the write side of the migration. Lookups return an explicit
// found flag so callers never inspect driver error strings to distinguish
// "no row" from a real failure.
type Store interface {
	// User operations
	GetUserByEmail(ctx context.Context, email string) (*model.User, bool, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	SetUserExternalID(ctx context.Context, userID, externalID string) error

	// Product operations. Products are unique per (user, name).
	GetProductByName(ctx context.Context, userID, name string) (*model.Product, bool, error)
	CreateProduct(ctx context.Context, product *model.Product) error

	// The remaining kinds have no dedup key and insert unconditionally.
	CreateRevenue(ctx context.Context, revenue *model.Revenue) error
	CreateExpense(ctx context.Context, expense *model.Expense) error
	CreateTransaction(ctx context.Context, transaction *model.Transaction) error
	CreateDream(ctx context.Context, dream *model.Dream) error
	CreateBet(ctx context.Context, bet *model.Bet) error
	CreateGoal(ctx context.Context, goal *model.Goal) error
	CreateDebt(ctx context.Context, debt *model.Debt) error
}
