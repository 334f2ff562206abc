package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(t *testing.T) Config {
	t.Setenv("POSTGRES_USER", "settlement")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	return New()
}

func TestNew_Defaults(t *testing.T) {
	conf := validConfig(t)

	require.NoError(t, conf.Validate())
	assert.True(t, conf.Settlement.FeeRate.Equal(decimal.RequireFromString("0.015")))
	assert.Equal(t, int64(5000), conf.Settlement.FixedFee)
	assert.Equal(t, 7*24*time.Hour, conf.Settlement.ReturnWindow)
	assert.Equal(t, 48*time.Hour, conf.Settlement.AutoConfirmGrace)
	assert.Equal(t, []string{"localhost:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 5, conf.Kafka.RetryAttempts)
	assert.Equal(t, 100*time.Millisecond, conf.Kafka.RetryDelay)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("WITHDRAWAL_FEE_RATE", "0.02")
	t.Setenv("WITHDRAWAL_FIXED_FEE", "100")
	t.Setenv("RETURN_WINDOW", "72h")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	conf := validConfig(t)

	require.NoError(t, conf.Validate())
	assert.True(t, conf.Settlement.FeeRate.Equal(decimal.RequireFromString("0.02")))
	assert.Equal(t, int64(100), conf.Settlement.FixedFee)
	assert.Equal(t, 72*time.Hour, conf.Settlement.ReturnWindow)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(c *Config)
	}{
		{name: "unknown env", modify: func(c *Config) { c.Env = "dev" }},
		{name: "missing db password", modify: func(c *Config) { c.Postgres.Password = "" }},
		{name: "zero minimum withdrawal", modify: func(c *Config) { c.Settlement.MinWithdrawal = 0 }},
		{name: "negative fixed fee", modify: func(c *Config) { c.Settlement.FixedFee = -1 }},
		{name: "fee rate of 100%", modify: func(c *Config) { c.Settlement.FeeRate = decimal.NewFromInt(1) }},
		{name: "negative fee rate", modify: func(c *Config) { c.Settlement.FeeRate = decimal.RequireFromString("-0.01") }},
		{name: "no brokers", modify: func(c *Config) { c.Kafka.Brokers = nil }},
		{name: "no kafka attempts", modify: func(c *Config) { c.Kafka.RetryAttempts = 0 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := validConfig(t)
			tc.modify(&conf)
			assert.Error(t, conf.Validate())
		})
	}
}
