// Package memory provides an in-memory ledger backend for development and
// tests. Records are lost on restart; the export pipeline is unavailable.
package memory

import (
	"context"
	"fmt"
	"sync"

	"poongtao/internal/core"
)

type Store struct {
	mu    sync.Mutex
	byTxn map[string]struct{}
	items []core.Record
}

func New() *Store {
	return &Store{byTxn: make(map[string]struct{})}
}

// Append stores the record and returns its transaction id as the ref.
// A duplicate transaction id is rejected, mirroring the SQLite unique index.
func (s *Store) Append(_ context.Context, r core.Record) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byTxn[r.TransactionID]; ok {
		return "", fmt.Errorf("duplicate transaction id %s", r.TransactionID)
	}
	s.byTxn[r.TransactionID] = struct{}{}
	s.items = append(s.items, r)
	return r.TransactionID, nil
}

// ListDay returns the user's records for the given date in insertion order.
func (s *Store) ListDay(_ context.Context, userID, date string) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Record
	for _, r := range s.items {
		if r.UserID == userID && r.Date == date {
			out = append(out, r)
		}
	}
	return out, nil
}
