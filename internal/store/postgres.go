package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/JoelSantos-JS/alidash-migrate/internal/model"
)

// PostgresStore implements Store against the Supabase Postgres database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a Postgres-backed store.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// GetUserByEmail looks up a user by email. sql.ErrNoRows is translated to
// (nil, false, nil) so the caller sees a clean not-found signal.
func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*model.User, bool, error) {
	user := &model.User{}
	var externalID sql.NullString
	err := s.db.QueryRowContext(ctx,
		`SELECT id, external_id, email, name, avatar_url, account_type, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &externalID, &user.Email, &user.Name, &user.AvatarURL, &user.AccountType, &user.CreatedAt, &user.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to find user by email: %w", err)
	}
	user.ExternalID = externalID.String
	return user, true, nil
}

// CreateUser inserts a user and returns it with its generated id.
func (s *PostgresStore) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO users (id, external_id, email, name, avatar_url, account_type, created_at, updated_at)
		 VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)`,
		user.ID, user.ExternalID, user.Email, user.Name, user.AvatarURL, user.AccountType, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return user, nil
}

// SetUserExternalID backfills the Firestore document ID on an existing user
// row. Only rows with no external id are touched.
func (s *PostgresStore) SetUserExternalID(ctx context.Context, userID, externalID string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE users SET external_id = $2, updated_at = NOW()
		 WHERE id = $1 AND (external_id IS NULL OR external_id = '')`,
		userID, externalID,
	)
	if err != nil {
		return fmt.Errorf("failed to set external id: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetProductByName(ctx context.Context, userID, name string) (*model.Product, bool, error) {
	product := &model.Product{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, status, purchase_price, selling_price, quantity, quantity_sold
		 FROM products WHERE user_id = $1 AND name = $2`,
		userID, name,
	).Scan(&product.ID, &product.UserID, &product.Name, &product.Status,
		&product.PurchasePrice, &product.SellingPrice, &product.Quantity, &product.QuantitySold)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to find product by name: %w", err)
	}
	return product, true, nil
}

func (s *PostgresStore) CreateProduct(ctx context.Context, p *model.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO products (id, user_id, name, category, supplier, aliexpress_link, image_url,
		                       description, notes, tracking_code, status, purchase_price, selling_price,
		                       quantity, quantity_sold, roi, actual_profit, purchase_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		p.ID, p.UserID, p.Name, p.Category, p.Supplier, p.AliexpressLink, p.ImageURL,
		p.Description, p.Notes, p.TrackingCode, p.Status, p.PurchasePrice, p.SellingPrice,
		p.Quantity, p.QuantitySold, p.Roi, p.ActualProfit, p.PurchaseDate, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateRevenue(ctx context.Context, r *model.Revenue) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO revenues (id, user_id, description, amount, category, source, notes, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.UserID, r.Description, r.Amount, r.Category, r.Source, r.Notes, r.Date, r.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert revenue: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateExpense(ctx context.Context, e *model.Expense) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (id, user_id, description, amount, category, type, notes, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.UserID, e.Description, e.Amount, e.Category, e.Type, e.Notes, e.Date, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, user_id, description, amount, type, status, category,
		                           payment_method, tags, is_installment, product_id, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		tx.ID, tx.UserID, tx.Description, tx.Amount, tx.Type, tx.Status, tx.Category,
		tx.PaymentMethod, pq.Array(tx.Tags), tx.IsInstallment, tx.ProductID, tx.Date, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateDream(ctx context.Context, d *model.Dream) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO dreams (id, user_id, name, description, type, status, priority,
		                     target_amount, current_amount, target_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		d.ID, d.UserID, d.Name, d.Description, d.Type, d.Status, d.Priority,
		d.TargetAmount, d.CurrentAmount, d.TargetDate, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert dream: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateBet(ctx context.Context, b *model.Bet) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO bets (id, user_id, description, sport, event, type, status,
		                   stake, odds, potential_win, actual_win, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		b.ID, b.UserID, b.Description, b.Sport, b.Event, b.Type, b.Status,
		b.Stake, b.Odds, b.PotentialWin, b.ActualWin, b.Date, b.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bet: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateGoal(ctx context.Context, g *model.Goal) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO goals (id, user_id, name, description, category, type, target_amount,
		                    current_amount, unit, priority, status, deadline, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		g.ID, g.UserID, g.Name, g.Description, g.Category, g.Type, g.TargetAmount,
		g.CurrentAmount, g.Unit, g.Priority, g.Status, g.Deadline, g.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

func (s *PostgresStore) CreateDebt(ctx context.Context, d *model.Debt) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO debts (id, user_id, creditor_name, description, original_amount, current_amount,
		                    interest_rate, category, priority, status, payment_method, due_date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		d.ID, d.UserID, d.CreditorName, d.Description, d.OriginalAmount, d.CurrentAmount,
		d.InterestRate, d.Category, d.Priority, d.Status, d.PaymentMethod, d.DueDate, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}
	return nil
}

// compile-time interface check
var _ Store = (*PostgresStore)(nil)
