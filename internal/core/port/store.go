package port

import (
	"context"

	"adinsight/internal/core/domain"
)

// DataStore is the outbound port for the dataset files. Implementations
// load and parse the whole document on every call so that external edits to
// the backing files are visible on the next request. A failed or partial
// read returns an error; there is no streaming access.
type DataStore interface {
	// Campaigns returns the full campaigns document.
	Campaigns(ctx context.Context) ([]domain.Campaign, error)
	// PlainUsers returns the plaintext-credential user collection.
	PlainUsers(ctx context.Context) ([]domain.User, error)
	// ObfuscatedUsers returns the obfuscated-credential user collection.
	ObfuscatedUsers(ctx context.Context) ([]domain.User, error)
}
