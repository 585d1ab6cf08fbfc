// Package model defines the source aggregate read from Firestore and the
// destination rows written to Postgres.
package model

import "time"

// SourceUser is one user document from the Firestore "users" collection.
// Child records stay loosely typed; the mapper package coerces them into
// destination rows one at a time so a single malformed record cannot take
// down the rest of the document.
type SourceUser struct {
	ExternalID  string // Firestore document ID
	Email       string
	Name        string
	DisplayName string
	AvatarURL   string
	PhotoURL    string
	AccountType string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time

	Products     []any
	Revenues     []any
	Expenses     []any
	Transactions []any
	Dreams       []any
	Bets         []any
	Goals        []any
	Debts        []any
}

// User is a row in the destination users table. Email is the lookup key;
// ExternalID carries the Firestore document ID and is only ever backfilled
// from empty, never overwritten.
type User struct {
	ID          string
	ExternalID  string
	Email       string
	Name        string
	AvatarURL   string
	AccountType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Product is unique per (user, name); re-running the migration skips
// products that already exist.
type Product struct {
	ID             string
	UserID         string
	Name           string
	Category       string
	Supplier       string
	AliexpressLink string
	ImageURL       string
	Description    string
	Notes          string
	TrackingCode   string
	Status         string
	PurchasePrice  float64
	SellingPrice   float64
	Quantity       int
	QuantitySold   int
	Roi            float64
	ActualProfit   float64
	PurchaseDate   time.Time
	CreatedAt      time.Time
}

type Revenue struct {
	ID          string
	UserID      string
	Description string
	Amount      float64
	Category    string
	Source      string
	Notes       string
	Date        time.Time
	CreatedAt   time.Time
}

type Expense struct {
	ID          string
	UserID      string
	Description string
	Amount      float64
	Category    string
	Type        string
	Notes       string
	Date        time.Time
	CreatedAt   time.Time
}

type Transaction struct {
	ID            string
	UserID        string
	Description   string
	Amount        float64
	Type          string
	Status        string
	Category      string
	PaymentMethod string
	Tags          []string
	IsInstallment bool
	ProductID     *string // pass-through link to a product, may be absent
	Date          time.Time
	CreatedAt     time.Time
}

type Dream struct {
	ID            string
	UserID        string
	Name          string
	Description   string
	Type          string
	Status        string
	Priority      string
	TargetAmount  float64
	CurrentAmount float64
	TargetDate    *time.Time
	CreatedAt     time.Time
}

type Bet struct {
	ID           string
	UserID       string
	Description  string
	Sport        string
	Event        string
	Type         string
	Status       string
	Stake        float64
	Odds         float64
	PotentialWin float64
	ActualWin    float64
	Date         time.Time
	CreatedAt    time.Time
}

type Goal struct {
	ID            string
	UserID        string
	Name          string
	Description   string
	Category      string
	Type          string
	TargetAmount  float64
	CurrentAmount float64
	Unit          string
	Priority      string
	Status        string
	Deadline      *time.Time
	CreatedAt     time.Time
}

type Debt struct {
	ID             string
	UserID         string
	CreditorName   string
	Description    string
	OriginalAmount float64
	CurrentAmount  float64
	InterestRate   float64
	Category       string
	Priority       string
	Status         string
	PaymentMethod  string
	DueDate        *time.Time
	CreatedAt      time.Time
}
