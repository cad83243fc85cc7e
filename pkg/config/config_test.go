package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eliasgdev/price-manager-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "price-manager-api", cfg.App.Name)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_EnvTemPrioridade(t *testing.T) {
	t.Setenv("DB_PORT", "5433")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 5433, cfg.DB.Port)
	assert.Equal(t, "production", cfg.App.Env)
}

func TestDBConfig_DSN(t *testing.T) {
	cfg := config.DBConfig{
		Host:     "db.local",
		Port:     5432,
		User:     "app",
		Password: "s3nh@ com espaço",
		DBName:   "price_manager",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.local:5432")
	assert.Contains(t, dsn, "/price_manager")
	assert.NotContains(t, dsn, "s3nh@ com espaço", "a senha deve sair com URL encoding")
}

func TestDBConfig_ConnectionStringPrefereDatabaseURL(t *testing.T) {
	cfg := config.DBConfig{
		DatabaseURL: "postgresql://u:p@remoto:5432/db?sslmode=require",
		Host:        "ignorado",
	}

	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())
}
