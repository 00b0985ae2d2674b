package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-multimarca/pkg/config"
)

func TestPoolConfig_TomaTamanosDeConfig(t *testing.T) {
	cfg := config.DBConfig{
		Host: "db", Port: 5432, User: "inv", Password: "secreto", DBName: "inventario", SSLMode: "disable",
		MaxConns: 25, MinConns: 3, MaxConnLifetimeMin: 15, MaxConnIdleTimeMin: 5,
	}

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(25), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.Equal(t, 15*time.Minute, pc.MaxConnLifetime)
	assert.Equal(t, 5*time.Minute, pc.MaxConnIdleTime)
	assert.Equal(t, "db", pc.ConnConfig.Host)
	assert.Equal(t, "inventario", pc.ConnConfig.Database)
	assert.NotNil(t, pc.AfterConnect)
}

// DATABASE_URL se usa tal cual: el host no se reescribe.
func TestPoolConfig_DatabaseURL(t *testing.T) {
	cfg := config.DBConfig{DatabaseURL: "postgres://u:p@pg.internal:6543/ledger?sslmode=disable", MaxConns: 4, MinConns: 1}

	pc, err := poolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "pg.internal", pc.ConnConfig.Host)
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	assert.Equal(t, int32(4), pc.MaxConns)
}

func TestPoolConfig_DSNInvalido(t *testing.T) {
	_, err := poolConfig(config.DBConfig{DatabaseURL: "postgres://%zz", MaxConns: 1})
	assert.Error(t, err)
}
