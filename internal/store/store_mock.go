package store

import (
	"context"

	"github.com/huangsam/statgrid/internal/contract"
	"github.com/huangsam/statgrid/schema"
	"github.com/stretchr/testify/mock"
)

// MockStoreManager is a mock implementation of StoreManager for testing.
type MockStoreManager struct {
	mock.Mock
}

var _ contract.StoreManager = &MockStoreManager{} // Compile-time check

// GetRosterStore implements the StoreManager interface.
func (m *MockStoreManager) GetRosterStore() contract.RosterStore {
	ret := m.Called()
	rs, _ := ret.Get(0).(contract.RosterStore)
	return rs
}

// GetHistoryStore implements the StoreManager interface.
func (m *MockStoreManager) GetHistoryStore() contract.HistoryStore {
	ret := m.Called()
	hs, _ := ret.Get(0).(contract.HistoryStore)
	return hs
}

// MockRosterStore is a mock implementation of RosterStore for testing.
type MockRosterStore struct {
	mock.Mock
}

var _ contract.RosterStore = &MockRosterStore{} // Compile-time check

// Get implements the RosterStore interface.
func (m *MockRosterStore) Get(ctx context.Context, team string) ([]byte, int, int64, error) {
	args := m.Called(ctx, team)
	value, _ := args.Get(0).([]byte)
	return value, args.Int(1), args.Get(2).(int64), args.Error(3)
}

// Set implements the RosterStore interface.
func (m *MockRosterStore) Set(ctx context.Context, team string, value []byte, version int, timestamp int64) error {
	args := m.Called(ctx, team, value, version, timestamp)
	return args.Error(0)
}

// Teams implements the RosterStore interface.
func (m *MockRosterStore) Teams(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	teams, _ := args.Get(0).([]string)
	return teams, args.Error(1)
}

// GetStatus implements the RosterStore interface.
func (m *MockRosterStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.StoreStatus), args.Error(1)
}

// Close implements the RosterStore interface.
func (m *MockRosterStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockHistoryStore is a mock implementation of HistoryStore for testing.
type MockHistoryStore struct {
	mock.Mock
}

var _ contract.HistoryStore = &MockHistoryStore{} // Compile-time check

// RecordTotals implements the HistoryStore interface.
func (m *MockHistoryStore) RecordTotals(ctx context.Context, run schema.TotalsRunRecord, totals schema.AggregationResult) (int64, error) {
	args := m.Called(ctx, run, totals)
	return args.Get(0).(int64), args.Error(1)
}

// GetStatus implements the HistoryStore interface.
func (m *MockHistoryStore) GetStatus(ctx context.Context) (schema.HistoryStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(schema.HistoryStatus), args.Error(1)
}

// GetAllRuns implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllRuns(ctx context.Context) ([]schema.TotalsRunRecord, error) {
	args := m.Called(ctx)
	runs, _ := args.Get(0).([]schema.TotalsRunRecord)
	return runs, args.Error(1)
}

// GetAllValues implements the HistoryStore interface.
func (m *MockHistoryStore) GetAllValues(ctx context.Context) ([]schema.TotalsValueRecord, error) {
	args := m.Called(ctx)
	values, _ := args.Get(0).([]schema.TotalsValueRecord)
	return values, args.Error(1)
}

// Close implements the HistoryStore interface.
func (m *MockHistoryStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
