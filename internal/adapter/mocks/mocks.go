// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	m "mutman.dev/pkg/mutman/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockEnvResolver is a mock implementation of adapter.EnvResolver.
type MockEnvResolver struct {
	mock.Mock
}

// NewMockEnvResolver creates a MockEnvResolver that asserts its
// expectations on test cleanup.
func NewMockEnvResolver(t testingT) *MockEnvResolver {
	mockResolver := &MockEnvResolver{}
	mockResolver.Mock.Test(t)
	t.Cleanup(func() { mockResolver.AssertExpectations(t) })

	return mockResolver
}

// Resolve implements adapter.EnvResolver.
func (r *MockEnvResolver) Resolve(venvPath m.Path) (m.ExecutionContext, error) {
	args := r.Called(venvPath)

	return args.Get(0).(m.ExecutionContext), args.Error(1)
}

// MockProcessRunner is a mock implementation of adapter.ProcessRunner.
type MockProcessRunner struct {
	mock.Mock
}

// NewMockProcessRunner creates a MockProcessRunner that asserts its
// expectations on test cleanup.
func NewMockProcessRunner(t testingT) *MockProcessRunner {
	mockRunner := &MockProcessRunner{}
	mockRunner.Mock.Test(t)
	t.Cleanup(func() { mockRunner.AssertExpectations(t) })

	return mockRunner
}

// Run implements adapter.ProcessRunner.
func (r *MockProcessRunner) Run(ctx context.Context, invocation m.Invocation) (m.ProcessResult, error) {
	args := r.Called(ctx, invocation)

	return args.Get(0).(m.ProcessResult), args.Error(1)
}

// MockCacheAdapter is a mock implementation of adapter.CacheAdapter.
type MockCacheAdapter struct {
	mock.Mock
}

// NewMockCacheAdapter creates a MockCacheAdapter that asserts its
// expectations on test cleanup.
func NewMockCacheAdapter(t testingT) *MockCacheAdapter {
	mockCache := &MockCacheAdapter{}
	mockCache.Mock.Test(t)
	t.Cleanup(func() { mockCache.AssertExpectations(t) })

	return mockCache
}

// Exists implements adapter.CacheAdapter.
func (c *MockCacheAdapter) Exists(path m.Path) bool {
	args := c.Called(path)

	return args.Bool(0)
}

// Remove implements adapter.CacheAdapter.
func (c *MockCacheAdapter) Remove(path m.Path) error {
	args := c.Called(path)

	return args.Error(0)
}

// MockReportStore is a mock implementation of adapter.ReportStore.
type MockReportStore struct {
	mock.Mock
}

// NewMockReportStore creates a MockReportStore that asserts its
// expectations on test cleanup.
func NewMockReportStore(t testingT) *MockReportStore {
	mockStore := &MockReportStore{}
	mockStore.Mock.Test(t)
	t.Cleanup(func() { mockStore.AssertExpectations(t) })

	return mockStore
}

// Save implements adapter.ReportStore.
func (s *MockReportStore) Save(path m.Path, snapshot m.Snapshot) error {
	args := s.Called(path, snapshot)

	return args.Error(0)
}

// Load implements adapter.ReportStore.
func (s *MockReportStore) Load(path m.Path) (m.Snapshot, error) {
	args := s.Called(path)

	return args.Get(0).(m.Snapshot), args.Error(1)
}
