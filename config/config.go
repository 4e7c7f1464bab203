package config

import (
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	GeneralVersion       string `mapstructure:"GENERAL_VERSION"`
	Environment          string `mapstructure:"ENVIRONMENT"`
	ServerPort           int    `mapstructure:"SERVER_PORT"`
	DatabaseHost         string `mapstructure:"DB_HOST"`
	DatabasePort         int    `mapstructure:"DB_PORT"`
	DatabaseName         string `mapstructure:"DB_NAME"`
	DatabaseUser         string `mapstructure:"DB_USER"`
	DatabasePassword     string `mapstructure:"DB_PASSWORD"`
	DatabaseCacheAddress string `mapstructure:"DB_CACHE_ADDRESS"`
	DatabaseCachePort    int    `mapstructure:"DB_CACHE_PORT"`
	DatabaseCacheReset   int    `mapstructure:"DB_CACHE_RESET"`
	CorsAllowOrigins     string `mapstructure:"CORS_ALLOW_ORIGINS"`
	JWTSecret            string `mapstructure:"JWT_SECRET"`
	JWTIssuer            string `mapstructure:"JWT_ISSUER"`
	JWTExpiryHours       int    `mapstructure:"JWT_EXPIRY_HOURS"`
	BcryptCost           int    `mapstructure:"BCRYPT_COST"`
	WaterRatePerUnit     string `mapstructure:"WATER_RATE_PER_UNIT"`

	// WaterRate is WaterRatePerUnit parsed during validation.
	WaterRate decimal.Decimal `mapstructure:"-"`
}

var ConfigInstance Config

var envVars = []string{
	"GENERAL_VERSION", "ENVIRONMENT", "SERVER_PORT", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	"DB_CACHE_ADDRESS", "DB_CACHE_PORT", "DB_CACHE_RESET",
	"CORS_ALLOW_ORIGINS",
	"JWT_SECRET", "JWT_ISSUER", "JWT_EXPIRY_HOURS", "BCRYPT_COST",
	"WATER_RATE_PER_UNIT",
}

func New() (Config, error) {
	log := logger.New("config").Function("New")
	log.Info("Initializing config")

	viper.AutomaticEnv()
	setDefaults()

	for _, env := range envVars {
		if err := viper.BindEnv(env); err != nil {
			log.Warn("Failed to bind environment variable", "env", env, "error", err)
		}
	}

	envVarsSet := viper.IsSet("SERVER_PORT") && viper.IsSet("DB_HOST")

	if envVarsSet {
		log.Info("Environment variables detected, skipping file loading")
	} else {
		log.Info("Environment variables not found, attempting to load from files")

		viper.SetConfigFile(".env")
		viper.SetConfigType("env")

		if err := viper.ReadInConfig(); err != nil {
			log.Warn("Could not find .env file", "error", err)
		} else {
			log.Info("Loaded .env file")
		}

		viper.SetConfigFile(".env.local")
		if err := viper.MergeInConfig(); err != nil {
			log.Debug("No .env.local file found", "error", err)
		} else {
			log.Info("Loaded .env.local overrides")
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, log.Err("Fatal error: could not unmarshal config", err)
	}

	if err := validateConfig(&config, log); err != nil {
		return Config{}, err
	}

	log.Info(
		"Successfully initialized config",
		"environment", config.Environment,
		"port", config.ServerPort,
		"waterRate", config.WaterRate.String(),
	)
	return ConfigInstance, nil
}

func GetConfig() Config {
	return ConfigInstance
}

func (c Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpiryHours) * time.Hour
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "production")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_CACHE_RESET", -1)
	viper.SetDefault("JWT_ISSUER", "rentledger")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)
	viper.SetDefault("BCRYPT_COST", 12)
	viper.SetDefault("WATER_RATE_PER_UNIT", "5000")
}

func validateConfig(config *Config, log logger.Logger) error {
	if config.ServerPort <= 0 {
		return log.Error(
			"Fatal error: invalid server port",
			"port", config.ServerPort,
		)
	}

	if config.JWTSecret == "" {
		return log.ErrMsg("Fatal error: JWT_SECRET is required")
	}

	if config.JWTExpiryHours <= 0 {
		return log.Error(
			"Fatal error: invalid JWT expiry",
			"hours", config.JWTExpiryHours,
		)
	}

	rate, err := decimal.NewFromString(config.WaterRatePerUnit)
	if err != nil {
		return log.Err("Fatal error: WATER_RATE_PER_UNIT is not a decimal", err, "value", config.WaterRatePerUnit)
	}
	if rate.IsNegative() {
		return log.Error("Fatal error: WATER_RATE_PER_UNIT must not be negative", "value", config.WaterRatePerUnit)
	}
	config.WaterRate = rate

	ConfigInstance = *config
	return nil
}
