package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.True(t, cfg.Store.Seed)
	assert.Equal(t, 100, cfg.Inventory.LowStockThreshold)
	assert.False(t, cfg.Inventory.AllowNegativeStock)
	assert.Equal(t, "gemini", cfg.AI.Provider)
	assert.Equal(t, 10, cfg.AI.TimeoutSeconds)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 2, cfg.DB.MinConns)
	assert.Equal(t, 60, cfg.DB.MaxConnLifetimeMin)
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "Postgres")
	v.Set("INVENTORY_ALLOW_NEGATIVE_STOCK", "true")
	v.Set("INVENTORY_LOW_STOCK_THRESHOLD", "50")
	v.Set("AI_PROVIDER", "none")
	v.Set("HTTP_PORT", "9090")
	v.Set("DB_MAX_CONNS", "25")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Store.Driver)
	assert.True(t, cfg.Inventory.AllowNegativeStock)
	assert.Equal(t, 50, cfg.Inventory.LowStockThreshold)
	assert.Equal(t, "none", cfg.AI.Provider)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 25, cfg.DB.MaxConns)
}

func TestFromViper_PoolInvalido(t *testing.T) {
	v := viper.New()
	v.Set("DB_MAX_CONNS", "2")
	v.Set("DB_MIN_CONNS", "5")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestFromViper_InvalidDriver(t *testing.T) {
	v := viper.New()
	v.Set("STORE_DRIVER", "redis")
	_, err := fromViper(v)
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/inv?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
