package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Stellar  StellarConfig
	Rewards  RewardsConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port         string
	AllowedHosts []string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// StellarConfig holds the ledger network parameters and the key material for
// the reward asset. The distributor seed is the only secret here; it signs
// every outgoing reward payment.
type StellarConfig struct {
	HorizonURL         string
	FriendbotURL       string
	NetworkPassphrase  string
	AssetCode          string
	IssuerAddress      string
	DistributorAddress string
	DistributorSeed    string
	TrustlineLimit     string
	SubmitTimeout      time.Duration
}

// RewardsConfig holds the reward amounts and limits for each activity
type RewardsConfig struct {
	DailySavingBase  float64
	DailyStreakBonus float64
	CommunityPost    float64
	QuizDailyCap     int
	ChallengeDefault float64
	HistoryPageSize  int64
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "4000")
	viper.SetDefault("Server.AllowedHosts", []string{"localhost:3000"})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "edutoken")
	viper.SetDefault("JWT.ExpiresIn", 7*24*60*60) // 7 days
	viper.SetDefault("LogLevel", "info")

	viper.SetDefault("Stellar.HorizonURL", "https://horizon-testnet.stellar.org")
	viper.SetDefault("Stellar.FriendbotURL", "https://friendbot.stellar.org")
	viper.SetDefault("Stellar.NetworkPassphrase", "Test SDF Network ; September 2015")
	viper.SetDefault("Stellar.AssetCode", "EDU")
	viper.SetDefault("Stellar.TrustlineLimit", "1000000")
	viper.SetDefault("Stellar.SubmitTimeout", 30*time.Second)

	viper.SetDefault("Rewards.DailySavingBase", 10.0)
	viper.SetDefault("Rewards.DailyStreakBonus", 5.0)
	viper.SetDefault("Rewards.CommunityPost", 5.0)
	viper.SetDefault("Rewards.QuizDailyCap", 10)
	viper.SetDefault("Rewards.ChallengeDefault", 10.0)
	viper.SetDefault("Rewards.HistoryPageSize", 50)
}
