package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetDuration(t *testing.T) {
	t.Setenv("LOCK_WAIT", "250ms")
	t.Setenv("LOCK_TTL", "30")
	t.Setenv("ROOM_CACHE_TTL", "soon")

	assert.Equal(t, 250*time.Millisecond, getDuration("LOCK_WAIT", time.Second))
	assert.Equal(t, 30*time.Second, getDuration("LOCK_TTL", time.Second))
	assert.Equal(t, time.Minute, getDuration("ROOM_CACHE_TTL", time.Minute))
	assert.Equal(t, time.Hour, getDuration("UNSET_DURATION_KEY", time.Hour))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("SECRETORPRIVATEKEY", "k")
	t.Setenv("TOKEN_TTL", "")

	cfg := Load()
	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, "casamia", cfg.DBName)
	assert.Equal(t, "k", cfg.SecretKey)
	assert.Equal(t, 72*time.Hour, cfg.TokenTTL)
}

func TestDSN(t *testing.T) {
	cfg := Config{DBHost: "db", DBUser: "u", DBPassword: "p", DBName: "casamia", DBPort: "5432", DBSSLMode: "disable"}
	assert.Equal(t, "host=db user=u password=p dbname=casamia port=5432 sslmode=disable TimeZone=UTC", dsn(cfg))
}
