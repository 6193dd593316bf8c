// Package jsonstore implements port.DataStore on top of flat JSON documents.
// Every call loads and parses the whole file, so edits made to the files by
// an external writer are visible on the next request without a restart.
package jsonstore

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	json "github.com/goccy/go-json"

	"adinsight/internal/config/configs"
	"adinsight/internal/core/domain"
)

// Store reads the three dataset documents from the paths in its
// configuration. When cfg.Cache is enabled, raw file contents are reused
// until the file's modification time or size changes; parsing still happens
// per call so callers never share mutable state.
type Store struct {
	cfg configs.Store

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	raw     []byte
	modTime time.Time
	size    int64
}

// New returns a Store for the given dataset locations.
func New(cfg configs.Store) *Store {
	return &Store{cfg: cfg, entries: make(map[string]*cacheEntry)}
}

// Campaigns returns the full campaigns document.
func (s *Store) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	if err := s.load(ctx, s.cfg.CampaignsPath, &out); err != nil {
		return nil, fmt.Errorf("load campaigns: %w", err)
	}
	return out, nil
}

// PlainUsers returns the plaintext-credential user collection.
func (s *Store) PlainUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := s.load(ctx, s.cfg.UsersPath, &out); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	return out, nil
}

// ObfuscatedUsers returns the obfuscated-credential user collection.
func (s *Store) ObfuscatedUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := s.load(ctx, s.cfg.EncryptedUsersPath, &out); err != nil {
		return nil, fmt.Errorf("load encrypted users: %w", err)
	}
	return out, nil
}

// load reads and parses one document into v. The read is synchronous and
// whole-file; there are no partial results. Context is only consulted for
// cancellation before the read starts.
func (s *Store) load(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.cfg.Cache {
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, v)
	}
	raw, err := s.cachedRead(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// cachedRead returns the file contents, reusing the previous read while the
// file's mtime and size are unchanged.
func (s *Store) cachedRead(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[path]; ok && e.modTime.Equal(fi.ModTime()) && e.size == fi.Size() {
		return e.raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s.entries[path] = &cacheEntry{raw: raw, modTime: fi.ModTime(), size: fi.Size()}
	return raw, nil
}
