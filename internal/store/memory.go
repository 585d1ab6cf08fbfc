package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/JoelSantos-JS/alidash-migrate/internal/model"
)

// MemoryStore implements Store with in-memory slices, preserving insertion
// order. It backs the migration tests so no live database is needed.
type MemoryStore struct {
	mu sync.RWMutex

	users        []*model.User
	products     []*model.Product
	revenues     []*model.Revenue
	expenses     []*model.Expense
	transactions []*model.Transaction
	dreams       []*model.Dream
	bets         []*model.Bet
	goals        []*model.Goal
	debts        []*model.Debt
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, true, nil
		}
	}
	return nil, false, nil
}

func (s *MemoryStore) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	s.users = append(s.users, &copied)
	return user, nil
}

func (s *MemoryStore) SetUserExternalID(ctx context.Context, userID, externalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == userID && u.ExternalID == "" {
			u.ExternalID = externalID
		}
	}
	return nil
}

func (s *MemoryStore) GetProductByName(ctx context.Context, userID, name string) (*model.Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.UserID == userID && p.Name == name {
			copied := *p
			return &copied, true, nil
		}
	}
	return nil, false, nil
}

func (s *MemoryStore) CreateProduct(ctx context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	copied := *p
	s.products = append(s.products, &copied)
	return nil
}

func (s *MemoryStore) CreateRevenue(ctx context.Context, r *model.Revenue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	copied := *r
	s.revenues = append(s.revenues, &copied)
	return nil
}

func (s *MemoryStore) CreateExpense(ctx context.Context, e *model.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	copied := *e
	s.expenses = append(s.expenses, &copied)
	return nil
}

func (s *MemoryStore) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	copied := *tx
	s.transactions = append(s.transactions, &copied)
	return nil
}

func (s *MemoryStore) CreateDream(ctx context.Context, d *model.Dream) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	copied := *d
	s.dreams = append(s.dreams, &copied)
	return nil
}

func (s *MemoryStore) CreateBet(ctx context.Context, b *model.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	copied := *b
	s.bets = append(s.bets, &copied)
	return nil
}

func (s *MemoryStore) CreateGoal(ctx context.Context, g *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	copied := *g
	s.goals = append(s.goals, &copied)
	return nil
}

func (s *MemoryStore) CreateDebt(ctx context.Context, d *model.Debt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	copied := *d
	s.debts = append(s.debts, &copied)
	return nil
}

// Snapshot accessors used by tests to assert on final state.

func (s *MemoryStore) Users() []*model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.User(nil), s.users...)
}

func (s *MemoryStore) Products() []*model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Product(nil), s.products...)
}

func (s *MemoryStore) Revenues() []*model.Revenue {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Revenue(nil), s.revenues...)
}

func (s *MemoryStore) Expenses() []*model.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Expense(nil), s.expenses...)
}

func (s *MemoryStore) Transactions() []*model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Transaction(nil), s.transactions...)
}

func (s *MemoryStore) Dreams() []*model.Dream {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Dream(nil), s.dreams...)
}

func (s *MemoryStore) Bets() []*model.Bet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Bet(nil), s.bets...)
}

func (s *MemoryStore) Goals() []*model.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Goal(nil), s.goals...)
}

func (s *MemoryStore) Debts() []*model.Debt {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Debt(nil), s.debts...)
}

// compile-time interface check
var _ Store = (*MemoryStore)(nil)
