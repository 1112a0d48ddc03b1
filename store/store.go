package store

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Collection names a persisted entity collection; the name doubles as the
// backing file's base name.
type Collection string

const (
	Products   Collection = "products"
	Customers  Collection = "customers"
	Deliveries Collection = "deliveries"
	Invoices   Collection = "invoices"
	Users      Collection = "users"
	Company    Collection = "company"
)

func (c Collection) filename() string { return string(c) + ".json" }

// Store owns the in-memory collections and their JSON files. A single
// RWMutex serializes every mutation, which keeps the voucher counter's
// read-increment pair and the id max-scans atomic under concurrent request
// handlers. Each mutation rewrites the affected files wholesale, write
// through, no batching.
type Store struct {
	mu    sync.RWMutex
	dir   string
	log   *zap.Logger
	state State
}

// Open loads every collection from dir, creating dir if needed. A missing
// file yields an empty collection; a corrupt file is logged and likewise
// yields an empty collection, so a crash mid-write never prevents startup.
func Open(dir string, log *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{dir: dir, log: log}

	load := func(c Collection, dst any) {
		if _, err := readJSON(s.path(c), dst); err != nil {
			s.log.Warn("collection unreadable, starting empty",
				zap.String("collection", string(c)), zap.Error(err))
		}
	}
	load(Products, &s.state.Products)
	load(Customers, &s.state.Customers)
	load(Deliveries, &s.state.Deliveries)
	load(Invoices, &s.state.Invoices)
	load(Users, &s.state.Users)
	load(Company, &s.state.Company)

	s.state.seedVoucher()
	return s, nil
}

func (s *Store) path(c Collection) string {
	return filepath.Join(s.dir, c.filename())
}

// View runs fn under the read lock. fn must not mutate the state and must
// copy out anything it wants to keep past the call.
func (s *Store) View(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.state)
}

// Mutate runs fn under the write lock and persists the collections fn
// reports dirty. When fn errors, nothing is persisted. Persistence failures
// are logged loudly but do not roll back the in-memory mutation; the
// operation still reports its in-memory outcome to the caller.
func (s *Store) Mutate(fn func(st *State) ([]Collection, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	dirty, err := fn(&s.state)
	if err != nil {
		return err
	}
	for _, c := range dirty {
		s.persistLocked(c)
	}
	return nil
}

func (s *Store) persistLocked(c Collection) {
	var v any
	switch c {
	case Products:
		v = s.state.Products
	case Customers:
		v = s.state.Customers
	case Deliveries:
		v = s.state.Deliveries
	case Invoices:
		v = s.state.Invoices
	case Users:
		v = s.state.Users
	case Company:
		v = s.state.Company
	default:
		return
	}
	if err := writeJSON(s.path(c), v); err != nil {
		// In-memory state and disk now diverge; accepted degradation, but
		// it must be impossible to miss in the logs.
		s.log.Error("persist failed, in-memory state retained",
			zap.String("collection", string(c)), zap.Error(err))
	}
}

// RemoveFile best-effort deletes a collection's backing file; used by reset.
// Failure is logged, never fatal.
func (s *Store) RemoveFile(c Collection) {
	if err := os.Remove(s.path(c)); err != nil && !os.IsNotExist(err) {
		s.log.Warn("could not remove collection file",
			zap.String("collection", string(c)), zap.Error(err))
	}
}
