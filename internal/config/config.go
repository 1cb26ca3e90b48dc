package config

import (
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Reporting ReportingConfig
	Filter    FilterConfig
	Cache     CacheConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

// ReportingConfig carries the host-supplied knobs of the financial engine:
// the PPN rate, the fixed reporting time zone and the currency precision
// used when rounding derived tax figures.
type ReportingConfig struct {
	PPNRate           string
	Timezone          string
	CurrencyPrecision int
}

// FilterConfig carries the sentinel criterion that disables a filter on the
// index endpoints.
type FilterConfig struct {
	AllSentinel string
}

type CacheConfig struct {
	Enabled         bool
	RedisURL        string
	RedisHost       string
	RedisPort       string
	RedisPassword   string
	RedisDB         int
	RecapTTLSeconds int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		viper.SetDefault("SERVER_PORT", "8080")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 10)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 10)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("REPORT_PPN_RATE", "0.11")
		viper.SetDefault("REPORT_TIMEZONE", "Asia/Jakarta")
		viper.SetDefault("REPORT_CURRENCY_PRECISION", 2)
		viper.SetDefault("FILTER_ALL_SENTINEL", "all")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_RECAP_TTL_SECONDS", 60)

		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Reporting: ReportingConfig{
				PPNRate:           viper.GetString("REPORT_PPN_RATE"),
				Timezone:          viper.GetString("REPORT_TIMEZONE"),
				CurrencyPrecision: viper.GetInt("REPORT_CURRENCY_PRECISION"),
			},
			Filter: FilterConfig{
				AllSentinel: viper.GetString("FILTER_ALL_SENTINEL"),
			},
			Cache: CacheConfig{
				Enabled:         viper.GetBool("CACHE_ENABLED"),
				RedisURL:        viper.GetString("REDIS_URL"),
				RedisHost:       viper.GetString("REDIS_HOST"),
				RedisPort:       viper.GetString("REDIS_PORT"),
				RedisPassword:   viper.GetString("REDIS_PASSWORD"),
				RedisDB:         viper.GetInt("REDIS_DB"),
				RecapTTLSeconds: viper.GetInt("CACHE_RECAP_TTL_SECONDS"),
			},
		}
	})

	return instance
}

// Rate parses the configured PPN rate, falling back to the statutory 11%
// on a malformed value.
func (r ReportingConfig) Rate() decimal.Decimal {
	rate, err := decimal.NewFromString(r.PPNRate)
	if err != nil || rate.IsNegative() {
		return decimal.New(11, -2)
	}

	return rate
}

// Location resolves the reporting time zone, falling back to UTC when the
// zone name is unknown.
func (r ReportingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(r.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
}
