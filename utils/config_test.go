package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("SIGNING_KEY", "k")
	t.Setenv("DB_DRIVER", DriverMemory)
	t.Setenv("WEBHOOK_TIMEOUT", "3s")

	c, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 8080, c.ServerPort)
	assert.Equal(t, "INR", c.Currency)
	assert.Equal(t, int64(50), c.AdvanceLimitPercent)
	assert.Equal(t, "3s", c.WebhookTimeout.String())
	assert.Equal(t, 3, c.TxMaxRetries)
}

func TestValidateConfig(t *testing.T) {
	assert.Error(t, validateConfig(&Config{SigningKey: "k", DBDriver: DriverMemory}))
	assert.Error(t, validateConfig(&Config{ServerPort: 1, DBDriver: DriverMemory}))
	assert.Error(t, validateConfig(&Config{ServerPort: 1, SigningKey: "k", DBDriver: DriverPostgres}))
	assert.Error(t, validateConfig(&Config{ServerPort: 1, SigningKey: "k", DBDriver: "mysql"}))
	assert.NoError(t, validateConfig(&Config{ServerPort: 1, SigningKey: "k", DBDriver: DriverMemory}))
}

func TestRedactMasksSecrets(t *testing.T) {
	c := &Config{SigningKey: "k", DBPassword: "p", RedisPassword: "r"}
	r := c.Redact()
	assert.Equal(t, "****", r.SigningKey)
	assert.Equal(t, "****", r.DBPassword)
	assert.Equal(t, "p", c.DBPassword)
}
