package mapper

import (
	"fmt"
	"time"

	"github.com/JoelSantos-JS/alidash-migrate/internal/model"
)

// asRecord asserts that a child record is a key/value object. Firestore
// arrays can legally hold anything, so a corrupted entry surfaces here
// instead of panicking inside a field lookup.
func asRecord(rec any) (map[string]any, error) {
	m, ok := rec.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("record is not an object (got %T)", rec)
	}
	return m, nil
}

// Label extracts the identifying field of a record for log lines, trying
// the names each entity kind uses. Falls back to "sem nome" when the record
// has no usable identifier.
func Label(rec any) string {
	m, ok := rec.(map[string]any)
	if !ok {
		return "sem nome"
	}
	return FirstString(m, "sem nome", "name", "description", "title", "creditorName")
}

// MapProduct maps one source product onto a destination row owned by
// userID. Required dates fall back to now.
func MapProduct(rec any, userID string, now time.Time) (*model.Product, error) {
	m, err := asRecord(rec)
	if err != nil {
		return nil, err
	}
	return &model.Product{
		UserID:         userID,
		Name:           String(m, "name", ""),
		Category:       String(m, "category", ""),
		Supplier:       String(m, "supplier", ""),
		AliexpressLink: String(m, "aliexpressLink", ""),
		ImageURL:       String(m, "imageUrl", ""),
		Description:    String(m, "description", ""),
		Notes:          String(m, "notes", ""),
		TrackingCode:   String(m, "trackingCode", ""),
		Status:         String(m, "status", "purchased"),
		PurchasePrice:  Float(m, "purchasePrice", 0),
		SellingPrice:   Float(m, "sellingPrice", 0),
		Quantity:       Int(m, "quantity", 1),
		QuantitySold:   Int(m, "quantitySold", 0),
		Roi:            Float(m, "roi", 0),
		ActualProfit:   Float(m, "actualProfit", 0),
		PurchaseDate:   TimeOr(m, "purchaseDate", now),
		CreatedAt:      TimeOr(m, "createdAt", now),
	}, nil
}

func MapRevenue(rec any, userID string, now time.Time) (*model.Revenue, error) {
	m, err := asRecord(rec)
	if err != nil {
		return nil, err
	}
	return &model.Revenue{
		UserID:      userID,
		Description: String(m, "description", ""),
		Amount:      Float(m, "amount", 0),
		Category:    String(m, "category", ""),
		Source:      String(m, "source", "other"),
		Notes:       String(m, "notes", ""),
		Date:        TimeOr(m, "date", now),
		CreatedAt:   TimeOr(m, "createdAt", now),
	}, nil
}

func MapExpense(rec any, userID string, now time.Time) (*model.Expense, error) {
	m, err := asRecord(rec)
	if err != nil {
		return nil, err
	}
	return &model.Expense{
		UserID:      userID,
		Description: String(m, "description", ""),
		Amount:      Float(m, "amount", 0),
		Category:    String(m, "category", ""),
		Type:        String(m, "type", "other"),
		Notes:       String(m, "notes", ""),
		Date:        TimeOr(m, "date", now),
		CreatedAt:   TimeOr(m, "createdAt", now),
	}, nil
}

func MapTransaction(rec any, userID string, now time.Time) (*model.Transaction, error) {
	m, err := asRecord(rec)
	if err != nil {
		return nil, err
	}
	return &model.Transaction{
		UserID:        userID,
		Description:   String(m, "description", ""),
		Amount:        Float(m, "amount", 0),
		Type:          String(m, "type", "expense"),
		Status:        String(m, "status", "completed"),
		Category:      String(m, "category", ""),
		PaymentMethod: String(m, "paymentMethod", ""),
		Tags:          Strings(m, "tags"),
		IsInstallment: Bool(m, "isInstallment", false),
		ProductID:     StringPtr(m, "productId"),
		Date:          TimeOr(m, "date", now),
		CreatedAt:     TimeOr(m, "createdAt", now),
	}, nil
}

func MapDream(rec any, userID string, now time.Time) (*model.Dream, error) {
	m, err := asRecord(rec)
	if err != nil {
		return nil, err
	}
	return &model.Dream{
		UserID:        userID,
		Name:          String(m, "name", ""),
		Description:   String(m, "description", ""),
		Type:          String(m, "type", "personal"),
		Status:        String(m, "status", "planning"),
		Priority:      String(m, "priority", "medium"),
		TargetAmount:  Float(m, "targetAmount", 0),
		CurrentAmount: Float(m, "currentAmount", 0),
		TargetDate:    TimePtr(m, "targetDate"),
		CreatedAt:     TimeOr(m, "createdAt", now),
	}, nil
}

func MapBet(rec any, userID string, now time.Time) (*model.Bet, error) {
	m, err := asRecord(rec)
	if err != nil {
		return nil, err
	}
	return &model.Bet{
		UserID:       userID,
		Description:  String(m, "description", ""),
		Sport:        String(m, "sport", ""),
		Event:        String(m, "event", ""),
		Type:         String(m, "type", "single"),
		Status:       String(m, "status", "pending"),
		Stake:        Float(m, "stake", 0),
		Odds:         Float(m, "odds", 0),
		PotentialWin: Float(m, "potentialWin", 0),
		ActualWin:    Float(m, "actualWin", 0),
		Date:         TimeOr(m, "date", now),
		CreatedAt:    TimeOr(m, "createdAt", now),
	}, nil
}

func MapGoal(rec any, userID string, now time.Time) (*model.Goal, error) {
	m, err := asRecord(rec)
	if err != nil {
		return nil, err
	}
	return &model.Goal{
		UserID:        userID,
		Name:          String(m, "name", ""),
		Description:   String(m, "description", ""),
		Category:      String(m, "category", "financial"),
		Type:          String(m, "type", "savings"),
		TargetAmount:  Float(m, "targetAmount", 0),
		CurrentAmount: Float(m, "currentAmount", 0),
		Unit:          String(m, "unit", "BRL"),
		Priority:      String(m, "priority", "medium"),
		Status:        String(m, "status", "active"),
		Deadline:      TimePtr(m, "deadline"),
		CreatedAt:     TimeOr(m, "createdAt", now),
	}, nil
}

func MapDebt(rec any, userID string, now time.Time) (*model.Debt, error) {
	m, err := asRecord(rec)
	if err != nil {
		return nil, err
	}
	return &model.Debt{
		UserID:         userID,
		CreditorName:   String(m, "creditorName", ""),
		Description:    String(m, "description", ""),
		OriginalAmount: Float(m, "originalAmount", 0),
		CurrentAmount:  Float(m, "currentAmount", 0),
		InterestRate:   Float(m, "interestRate", 0),
		Category:       String(m, "category", "other"),
		Priority:       String(m, "priority", "medium"),
		Status:         String(m, "status", "pending"),
		PaymentMethod:  String(m, "paymentMethod", ""),
		DueDate:        TimePtr(m, "dueDate"),
		CreatedAt:      TimeOr(m, "createdAt", now),
	}, nil
}
