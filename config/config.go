package config

import (
	"log"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config carries every tunable of the auth core. Loaded once at boot and
// never mutated afterwards; components receive it at construction.
type Config struct {
	Env                string
	Port               string
	DBURL              string
	APIBase            string
	TokenSecret        string
	AccessTokenExpiry  int // seconds
	BcryptCost         int
	AccessTokenHeader  string
	RefreshTokenHeader string
	CORSOrigins        string // comma-separated whitelist, empty allows all
}

// Load reads configuration from the environment, falling back to development
// defaults. DB_URL has no default and aborts startup when missing.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("ENV", "development")
	v.SetDefault("PORT", "3000")
	v.SetDefault("API_BASE", "/api")
	v.SetDefault("TOKEN_SECRET", "DEV-JWTSecret")
	v.SetDefault("ACCESS_TOKEN_EXPIRY", 600)
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("ACCESS_TOKEN_HEADER", "authorization")
	v.SetDefault("REFRESH_TOKEN_HEADER", "refresh")
	v.SetDefault("CORS_ORIGINS", "")

	dbURL := v.GetString("DB_URL")
	if dbURL == "" {
		log.Fatalf("Missing required environment variable: DB_URL")
	}

	return &Config{
		Env:                v.GetString("ENV"),
		Port:               v.GetString("PORT"),
		DBURL:              dbURL,
		APIBase:            v.GetString("API_BASE"),
		TokenSecret:        v.GetString("TOKEN_SECRET"),
		AccessTokenExpiry:  getInt(v, "ACCESS_TOKEN_EXPIRY", 600),
		BcryptCost:         getInt(v, "BCRYPT_COST", 10),
		AccessTokenHeader:  v.GetString("ACCESS_TOKEN_HEADER"),
		RefreshTokenHeader: v.GetString("REFRESH_TOKEN_HEADER"),
		CORSOrigins:        v.GetString("CORS_ORIGINS"),
	}
}

// AccessTokenTTL returns the access token lifetime as a duration.
func (c *Config) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpiry) * time.Second
}

// getInt parses an integer setting, keeping the default when the
// environment holds a non-numeric value.
func getInt(v *viper.Viper, key string, defaultVal int) int {
	valStr := v.GetString(key)
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("Invalid value for %s, using default %d", key, defaultVal)
		return defaultVal
	}
	return val
}
