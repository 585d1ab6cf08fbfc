package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)

func TestMapProductDefaults(t *testing.T) {
	p, err := MapProduct(map[string]any{"name": "Widget"}, "user-1", testNow)
	require.NoError(t, err)

	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, "purchased", p.Status)
	assert.Equal(t, 1, p.Quantity)
	assert.Equal(t, 0, p.QuantitySold)
	assert.Equal(t, 0.0, p.PurchasePrice)
	assert.Equal(t, 0.0, p.SellingPrice)
	assert.Equal(t, 0.0, p.Roi)
	assert.Equal(t, testNow, p.PurchaseDate)
	assert.Equal(t, testNow, p.CreatedAt)
}

func TestMapProductCoercion(t *testing.T) {
	p, err := MapProduct(map[string]any{
		"name":          "Widget",
		"purchasePrice": "12.50",
		"sellingPrice":  int64(20),
		"quantity":      2.0,
		"status":        "sold",
		"purchaseDate":  "2024-11-20T08:30:00Z",
	}, "user-1", testNow)
	require.NoError(t, err)

	assert.Equal(t, 12.5, p.PurchasePrice)
	assert.Equal(t, 20.0, p.SellingPrice)
	assert.Equal(t, 2, p.Quantity)
	assert.Equal(t, "sold", p.Status)
	assert.Equal(t, time.Date(2024, 11, 20, 8, 30, 0, 0, time.UTC), p.PurchaseDate)
}

func TestMapProductBadPriceDefaultsToZero(t *testing.T) {
	p, err := MapProduct(map[string]any{
		"name":          "Widget",
		"purchasePrice": "not-a-number",
	}, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.PurchasePrice)
}

func TestMapRevenueDefaults(t *testing.T) {
	r, err := MapRevenue(map[string]any{"description": "Venda"}, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "other", r.Source)
	assert.Equal(t, "", r.Category)
	assert.Equal(t, 0.0, r.Amount)
	assert.Equal(t, testNow, r.Date)
}

func TestMapExpenseDefaults(t *testing.T) {
	e, err := MapExpense(map[string]any{"description": "Frete", "amount": 15.9}, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "other", e.Type)
	assert.Equal(t, 15.9, e.Amount)
}

func TestMapTransactionDefaults(t *testing.T) {
	tx, err := MapTransaction(map[string]any{"description": "Compra"}, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "expense", tx.Type)
	assert.Equal(t, "completed", tx.Status)
	assert.NotNil(t, tx.Tags)
	assert.Empty(t, tx.Tags)
	assert.False(t, tx.IsInstallment)
	assert.Nil(t, tx.ProductID)
}

func TestMapTransactionProductLink(t *testing.T) {
	tx, err := MapTransaction(map[string]any{
		"description": "Venda Widget",
		"type":        "income",
		"productId":   "prod-9",
		"tags":        []any{"venda", "widget"},
	}, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "income", tx.Type)
	require.NotNil(t, tx.ProductID)
	assert.Equal(t, "prod-9", *tx.ProductID)
	assert.Equal(t, []string{"venda", "widget"}, tx.Tags)
}

func TestMapDreamDefaults(t *testing.T) {
	d, err := MapDream(map[string]any{"name": "Casa própria"}, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "personal", d.Type)
	assert.Equal(t, "planning", d.Status)
	assert.Equal(t, "medium", d.Priority)
	assert.Equal(t, 0.0, d.TargetAmount)
	assert.Nil(t, d.TargetDate)
}

func TestMapBetDefaults(t *testing.T) {
	b, err := MapBet(map[string]any{"description": "Final"}, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "single", b.Type)
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, 0.0, b.Stake)
	assert.Equal(t, 0.0, b.Odds)
	assert.Equal(t, 0.0, b.PotentialWin)
}

func TestMapGoalDefaults(t *testing.T) {
	g, err := MapGoal(map[string]any{"name": "Reserva"}, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "financial", g.Category)
	assert.Equal(t, "savings", g.Type)
	assert.Equal(t, "BRL", g.Unit)
	assert.Equal(t, "medium", g.Priority)
	assert.Equal(t, "active", g.Status)
	assert.Nil(t, g.Deadline)
}

func TestMapDebtDefaults(t *testing.T) {
	d, err := MapDebt(map[string]any{"creditorName": "Banco"}, "user-1", testNow)
	require.NoError(t, err)
	assert.Equal(t, "other", d.Category)
	assert.Equal(t, "medium", d.Priority)
	assert.Equal(t, "pending", d.Status)
	assert.Equal(t, 0.0, d.OriginalAmount)
	assert.Nil(t, d.DueDate)
}

func TestMapRejectsNonObject(t *testing.T) {
	_, err := MapProduct("garbage", "user-1", testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an object")

	_, err = MapRevenue([]any{1, 2}, "user-1", testNow)
	require.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Widget", Label(map[string]any{"name": "Widget"}))
	assert.Equal(t, "Frete", Label(map[string]any{"description": "Frete"}))
	assert.Equal(t, "Banco", Label(map[string]any{"creditorName": "Banco"}))
	assert.Equal(t, "sem nome", Label(map[string]any{}))
	assert.Equal(t, "sem nome", Label("garbage"))
}
