package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port             string        `mapstructure:"PORT"`
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	GoogleMapsAPIKey string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	SearchCacheTTL   time.Duration `mapstructure:"SEARCH_CACHE_TTL"`
	SeedPath         string        `mapstructure:"SEED_PATH"`

	DefaultCity  string  `mapstructure:"DEFAULT_CITY"`
	InitialQuery string  `mapstructure:"INITIAL_QUERY"`
	InitialLat   float64 `mapstructure:"INITIAL_LAT"`
	InitialLng   float64 `mapstructure:"INITIAL_LNG"`
	BiasRadius   float64 `mapstructure:"BIAS_RADIUS_METERS"`
	Language     string  `mapstructure:"LANGUAGE"`
	Region       string  `mapstructure:"REGION"`
	MaxResults   int     `mapstructure:"MAX_RESULTS"`
}

// Load reads configuration from the environment on top of defaults.
func Load() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("GOOGLE_MAPS_API_KEY", "")
	v.SetDefault("SEARCH_CACHE_TTL", "10m")
	v.SetDefault("SEED_PATH", "data/seeds/categories.json")

	v.SetDefault("DEFAULT_CITY", "Nuevo Casas Grandes")
	v.SetDefault("INITIAL_QUERY", "Tacos, comida, restaurantes")
	v.SetDefault("INITIAL_LAT", 30.378746)
	v.SetDefault("INITIAL_LNG", -107.880062)
	v.SetDefault("BIAS_RADIUS_METERS", 5000.0)
	v.SetDefault("LANGUAGE", "es-MX")
	v.SetDefault("REGION", "mx")
	v.SetDefault("MAX_RESULTS", 20)

	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}
