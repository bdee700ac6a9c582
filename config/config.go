package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the server needs, loaded from .env or environment.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	RedisHost     string `mapstructure:"REDIS_HOST"`
	RedisPort     string `mapstructure:"REDIS_PORT"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// OpenRouter (OpenAI-compatible) endpoint for the step planner and the
	// materials assistant.
	OpenRouterAPIKey   string `mapstructure:"OPENROUTER_API_KEY"`
	OpenRouterEndpoint string `mapstructure:"OPENROUTER_API_ENDPOINT"`
	OpenRouterModel    string `mapstructure:"OPENROUTER_MODEL"`

	JWTSecret string `mapstructure:"JWT_SECRET"`
}

// LoadConfig reads configuration from a .env file, falling back to
// environment variables when the file is missing.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	if config.OpenRouterEndpoint == "" {
		config.OpenRouterEndpoint = "https://openrouter.ai/api/v1"
	}
	if config.OpenRouterModel == "" {
		config.OpenRouterModel = "google/gemini-2.5-flash"
	}
	return config, nil
}

// GetDBConnString returns the MySQL DSN.
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// GetRedisConnString returns the Redis address.
func (c *Config) GetRedisConnString() string {
	return fmt.Sprintf("%s:%s", c.RedisHost, c.RedisPort)
}
