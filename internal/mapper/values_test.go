package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		key  string
		def  float64
		want float64
	}{
		{"native float", map[string]any{"amount": 12.5}, "amount", 0, 12.5},
		{"firestore int64", map[string]any{"amount": int64(10)}, "amount", 0, 10},
		{"string decimal", map[string]any{"amount": "12.50"}, "amount", 0, 12.5},
		{"string with spaces", map[string]any{"amount": " 7.25 "}, "amount", 0, 7.25},
		{"not a number", map[string]any{"amount": "not-a-number"}, "amount", 0, 0},
		{"missing key", map[string]any{}, "amount", 0, 0},
		{"nil value", map[string]any{"amount": nil}, "amount", 0, 0},
		{"wrong type", map[string]any{"amount": true}, "amount", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Float(tt.data, tt.key, tt.def))
		})
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		def  int
		want int
	}{
		{"int64", map[string]any{"quantity": int64(3)}, 1, 3},
		{"float truncated", map[string]any{"quantity": 2.9}, 1, 2},
		{"string", map[string]any{"quantity": "4"}, 1, 4},
		{"missing defaults", map[string]any{}, 1, 1},
		{"garbage defaults", map[string]any{"quantity": "many"}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Int(tt.data, "quantity", tt.def))
		})
	}
}

func TestString(t *testing.T) {
	data := map[string]any{
		"name":  "  Widget  ",
		"empty": "",
		"num":   42,
	}
	assert.Equal(t, "Widget", String(data, "name", "x"))
	assert.Equal(t, "x", String(data, "empty", "x"))
	assert.Equal(t, "x", String(data, "num", "x"))
	assert.Equal(t, "x", String(data, "missing", "x"))
}

func TestFirstString(t *testing.T) {
	data := map[string]any{"displayName": "Ana Silva"}
	assert.Equal(t, "Ana Silva", FirstString(data, "", "name", "displayName"))
	assert.Equal(t, "", FirstString(data, "", "nickname"))
}

func TestTime(t *testing.T) {
	native := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		value  any
		want   time.Time
		wantOK bool
	}{
		{"native timestamp", native, native, true},
		{"rfc3339 string", "2024-03-10T12:00:00Z", native, true},
		{"bare date", "2024-03-10", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"unix millis", int64(1710072000000), time.UnixMilli(1710072000000), true},
		{"garbage string", "soon", time.Time{}, false},
		{"nil", nil, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Time(map[string]any{"date": tt.value}, "date")
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestTimeOrFallsBack(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, now, TimeOr(map[string]any{}, "date", now))
	assert.Equal(t, now, TimeOr(map[string]any{"date": "invalid"}, "date", now))
}

func TestTimePtr(t *testing.T) {
	assert.Nil(t, TimePtr(map[string]any{}, "dueDate"))
	got := TimePtr(map[string]any{"dueDate": "2025-06-01"}, "dueDate")
	assert.NotNil(t, got)
}

func TestStrings(t *testing.T) {
	got := Strings(map[string]any{"tags": []any{"a", 1, "b", ""}}, "tags")
	assert.Equal(t, []string{"a", "b"}, got)

	got = Strings(map[string]any{}, "tags")
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr(map[string]any{}, "productId"))
	got := StringPtr(map[string]any{"productId": "prod-1"}, "productId")
	assert.NotNil(t, got)
	assert.Equal(t, "prod-1", *got)
}
