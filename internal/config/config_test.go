package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "test-token")

	cfg := Load()
	require.Equal(t, "test-token", cfg.BotToken)
	assert.Equal(t, ":5000", cfg.HTTPAddr)
	assert.Equal(t, []string{"kafka:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "spread-bot", cfg.ServiceName)
	assert.Empty(t, cfg.Admins)
}

func TestSplitIDs(t *testing.T) {
	t.Setenv("ADMIN_IDS", "123, 456,,abc, 789")
	t.Setenv("SUPER_ADMIN_IDS", "42")

	cfg := Load()
	assert.Equal(t, []int64{123, 456, 789}, cfg.Admins)
	assert.Equal(t, []int64{42}, cfg.SuperAdmins)
}

func TestAdminLookups(t *testing.T) {
	cfg := Config{SuperAdmins: []int64{1}, Admins: []int64{2, 3}}

	assert.True(t, cfg.IsSuperAdmin(1))
	assert.False(t, cfg.IsSuperAdmin(2))
	assert.True(t, cfg.IsAdmin(2))
	assert.False(t, cfg.IsAdmin(1))
}

func TestKafkaBrokersCSV(t *testing.T) {
	t.Setenv("KAFKA_BROKERS", "broker1:9092, broker2:9092")

	cfg := Load()
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
}
