package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Evaluation EvaluationConfig
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// EvaluationConfig holds evaluation tunables loaded by the server.
// MaxConcurrentSamples sets the baseline concurrency cap at startup;
// DefaultNumRandomSolutions is loaded but not read elsewhere (the service's
// default sample count is 100). The cmd/evaluate CLI takes its settings from
// command-line flags, not from this struct.
type EvaluationConfig struct {
	DefaultNumRandomSolutions int
	MaxConcurrentSamples      int
}

func NewConfig() (*Config, error) {
	// Configure Viper to read .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Enable automatic environment variable loading
	viper.AutomaticEnv()

	viper.SetDefault("EVALUATION_DEFAULT_NUM_RANDOM_SOLUTIONS", 100)
	viper.SetDefault("EVALUATION_MAX_CONCURRENT_SAMPLES", 0)

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config
	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Evaluation.DefaultNumRandomSolutions = viper.GetInt("EVALUATION_DEFAULT_NUM_RANDOM_SOLUTIONS")
	config.Evaluation.MaxConcurrentSamples = viper.GetInt("EVALUATION_MAX_CONCURRENT_SAMPLES")

	log.Info().Interface("config", config).Msg("Config loaded")
	return &config, nil
}
