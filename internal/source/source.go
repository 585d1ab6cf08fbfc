// Package source reads user aggregates from the Firebase Firestore project
// the web app wrote to. It never writes to the source.
package source

import (
	"context"

	"github.com/JoelSantos-JS/alidash-migrate/internal/model"
)

// Reader returns the full list of source user aggregates. Implementations
// must return every document of the configured collection; a read failure
// here aborts the whole migration since there is nothing to migrate without
// the source list.
type Reader interface {
	ListUsers(ctx context.Context) ([]*model.SourceUser, error)
}
