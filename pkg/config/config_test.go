package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Logistica-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverPostgres, cfg.Store.Driver)
	assert.Equal(t, []int64{1}, cfg.Accounting.CostBranchIDs)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Store.AutoMigrate)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("COST_BRANCH_IDS", "3, 5,8")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("MIGRATIONS_AUTO", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StoreDriverMemory, cfg.Store.Driver)
	assert.Equal(t, []int64{3, 5, 8}, cfg.Accounting.CostBranchIDs)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Store.AutoMigrate)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_FilialesInvalidas(t *testing.T) {
	t.Setenv("COST_BRANCH_IDS", "1,x")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_FilialesVaciasOInvalidas(t *testing.T) {
	for _, raw := range []string{",", " , ", "0", "2,-1"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("COST_BRANCH_IDS", raw)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "fleet", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/fleet?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
