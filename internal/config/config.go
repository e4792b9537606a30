package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const openAIKeyEnv = "OPENAI_API_KEY"

type Config struct {
	Server ServerConfig
	Cors   CorsConfig
	LLM    LLMConfig
}

type ServerConfig struct {
	Port int
}

type CorsConfig struct {
	AllowedOrigins []string
}

type LLMConfig struct {
	OpenAI OpenAIConfig
}

type OpenAIConfig struct {
	Model       string
	Temperature float32
	MaxTokens   int
	BaseUrl     string
}

func LoadConfig(configName string) (*Config, error) {
	var config Config

	viper.SetConfigName(configName)
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	return &config, nil
}

// OpenAIKey reads the provider credential from the environment on every call.
// It is deliberately not part of the unmarshalled Config so the credential is
// never cached in process state.
func OpenAIKey() string {
	viper.AutomaticEnv()
	return viper.GetString(openAIKeyEnv)
}
