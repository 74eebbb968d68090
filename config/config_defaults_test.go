package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	cfg.applyDefaults()

	require.NotNil(t, cfg.Catalog)
	assert.Equal(t, defaultPageSize, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, defaultMaxPageSize, cfg.Catalog.MaxPageSize)
	require.NotNil(t, cfg.Checkout)
	assert.Equal(t, defaultCurrency, cfg.Checkout.Currency)
	assert.Equal(t, defaultCheckoutAttempts, cfg.Checkout.MaxAttempts)
	require.NotNil(t, cfg.Storage)
	assert.Equal(t, defaultMaxUploadSize, cfg.Storage.MaxUploadSize)
	assert.NotNil(t, cfg.Postgres)
	require.NotNil(t, cfg.Database)
	assert.Equal(t, defaultSlowQueryThreshold, cfg.Database.SlowQueryThreshold)
	assert.Equal(t, defaultPoolMonitorInterval, cfg.Database.PoolMonitorInterval)
	assert.Equal(t, defaultPoolWaitWarnThreshold, cfg.Database.PoolWaitWarnThreshold)
}

func TestApplyDefaults_KeepsDisabledPoolMonitor(t *testing.T) {
	cfg := &Config{Database: &DatabaseConfig{PoolMonitorInterval: -1, SlowQueryThreshold: time.Second}}

	cfg.applyDefaults()

	assert.Equal(t, time.Duration(-1), cfg.Database.PoolMonitorInterval)
	assert.Equal(t, time.Second, cfg.Database.SlowQueryThreshold)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Catalog:  &CatalogConfig{DefaultPageSize: 12, MaxPageSize: 48},
		Checkout: &CheckoutConfig{Currency: "USD", MaxAttempts: 5},
	}

	cfg.applyDefaults()

	assert.Equal(t, 12, cfg.Catalog.DefaultPageSize)
	assert.Equal(t, 48, cfg.Catalog.MaxPageSize)
	assert.Equal(t, "USD", cfg.Checkout.Currency)
	assert.Equal(t, 5, cfg.Checkout.MaxAttempts)
}

func TestIsAdminEmail(t *testing.T) {
	cfg := &Config{Admin: &AdminConfig{Emails: []string{"owner@shop.test", " Ops@Shop.test "}}}

	assert.True(t, cfg.IsAdminEmail("owner@shop.test"))
	assert.True(t, cfg.IsAdminEmail("ops@shop.test"))
	assert.False(t, cfg.IsAdminEmail("someone@shop.test"))
	assert.False(t, (&Config{}).IsAdminEmail("owner@shop.test"))
}
