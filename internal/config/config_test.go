package config

import (
	"testing"

	"github.com/billfold/billfold/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := GetDefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, types.StorageModeMemory, cfg.Storage.Mode)
	assert.Equal(t, "INV", cfg.Billing.BillNumberPrefix)
	assert.Equal(t, 30, cfg.Billing.DueDateDays)
}

func TestValidateRejectsBadConfig(t *testing.T) {
	cfg := GetDefaultConfig()
	cfg.Storage.Mode = "mainframe"
	assert.Error(t, cfg.Validate())

	cfg = GetDefaultConfig()
	cfg.Billing.DueDateDays = 0
	assert.Error(t, cfg.Validate())

	cfg = GetDefaultConfig()
	cfg.Billing.BillNumberPrefix = ""
	assert.Error(t, cfg.Validate())
}
