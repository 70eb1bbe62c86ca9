// Package store persists rosters and the totals history in SQL databases.
package store

import (
	"sync"

	"github.com/huangsam/statgrid/internal/contract"
)

// StoreManager manages the roster and history store instances.
type StoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	rosters      contract.RosterStore
	history      contract.HistoryStore
}

var _ contract.StoreManager = &StoreManager{} // Compile-time check

// NewStoreManager wraps existing stores. Either may be nil.
func NewStoreManager(rosters contract.RosterStore, history contract.HistoryStore) *StoreManager {
	return &StoreManager{rosters: rosters, history: history}
}

// GetRosterStore returns the roster store.
func (mgr *StoreManager) GetRosterStore() contract.RosterStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.rosters
}

// GetHistoryStore returns the totals history store.
func (mgr *StoreManager) GetHistoryStore() contract.HistoryStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.history
}
