package testutil

import (
	"context"

	"github.com/billfold/billfold/internal/config"
	"github.com/billfold/billfold/internal/kv"
	"github.com/billfold/billfold/internal/logger"
	"github.com/billfold/billfold/internal/types"
	"github.com/stretchr/testify/suite"
)

// BaseStoreTestSuite provides common test infrastructure: a debug
// logger, the default test configuration and a fresh in-memory
// key-value store per test.
type BaseStoreTestSuite struct {
	suite.Suite
	ctx    context.Context
	logger *logger.Logger
	config *config.Configuration
	kv     *kv.MemoryStore
}

// SetupTest prepares fresh infrastructure before each test
func (s *BaseStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.logger, _ = logger.NewLogger(types.LogLevelDebug)
	s.config = config.GetDefaultConfig()
	s.kv = kv.NewMemoryStore()
}

// TearDownTest cleans up after each test
func (s *BaseStoreTestSuite) TearDownTest() {
	s.kv.Flush()
}

// GetContext returns the test context
func (s *BaseStoreTestSuite) GetContext() context.Context {
	return s.ctx
}

// GetLogger returns the test logger
func (s *BaseStoreTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetConfig returns the test configuration
func (s *BaseStoreTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetKV returns the in-memory key-value store
func (s *BaseStoreTestSuite) GetKV() *kv.MemoryStore {
	return s.kv
}
