package source

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/JoelSantos-JS/alidash-migrate/internal/mapper"
	"github.com/JoelSantos-JS/alidash-migrate/internal/model"
)

// FirestoreReader reads user documents from a Firestore collection.
type FirestoreReader struct {
	client     *firestore.Client
	collection string
}

// NewFirestoreReader creates a reader over the given collection.
func NewFirestoreReader(client *firestore.Client, collection string) *FirestoreReader {
	return &FirestoreReader{client: client, collection: collection}
}

// ListUsers pulls every document in the user collection, in document order.
func (r *FirestoreReader) ListUsers(ctx context.Context) ([]*model.SourceUser, error) {
	iter := r.client.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	var users []*model.SourceUser
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("iterating %s: %w", r.collection, err)
		}
		users = append(users, parseUser(doc.Ref.ID, doc.Data()))
	}
	return users, nil
}

// parseUser shapes one raw document into a SourceUser. Top-level profile
// fields are coerced here; the eight embedded collections stay raw for the
// mapper, defaulting to empty lists so downstream loops never see nil.
func parseUser(docID string, data map[string]any) *model.SourceUser {
	return &model.SourceUser{
		ExternalID:  docID,
		Email:       mapper.String(data, "email", ""),
		Name:        mapper.String(data, "name", ""),
		DisplayName: mapper.String(data, "displayName", ""),
		AvatarURL:   mapper.String(data, "avatarUrl", ""),
		PhotoURL:    mapper.String(data, "photoURL", ""),
		AccountType: mapper.String(data, "accountType", ""),
		CreatedAt:   mapper.TimePtr(data, "createdAt"),
		UpdatedAt:   mapper.TimePtr(data, "updatedAt"),

		Products:     records(data, "products"),
		Revenues:     records(data, "revenues"),
		Expenses:     records(data, "expenses"),
		Transactions: records(data, "transactions"),
		Dreams:       records(data, "dreams"),
		Bets:         records(data, "bets"),
		Goals:        records(data, "goals"),
		Debts:        records(data, "debts"),
	}
}

// records extracts an embedded array, treating missing and malformed values
// as empty.
func records(data map[string]any, key string) []any {
	v, ok := data[key]
	if !ok || v == nil {
		return []any{}
	}
	list, ok := v.([]any)
	if !ok {
		return []any{}
	}
	return list
}
