package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"formation-management/pkg/gmailer"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Formation Management specifics
	Gmail    gmailer.Config
	DeepSeek DeepSeekConfig
	Chat     ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DeepSeekConfig holds the chat-completion API settings. An empty APIKey
// is not a boot failure: the chat endpoint reports it per call.
type DeepSeekConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type ChatConfig struct {
	MaxUsers        int
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Gmail sender identity
	cfg.Gmail.ClientID = viper.GetString("gmail.client_id")
	cfg.Gmail.ClientSecret = viper.GetString("gmail.client_secret")
	cfg.Gmail.RedirectURL = viper.GetString("gmail.redirect_url")
	cfg.Gmail.RefreshToken = viper.GetString("gmail.refresh_token")
	cfg.Gmail.Sender = viper.GetString("gmail.sender")
	if v := viper.GetString("gmail_client_id"); v != "" {
		cfg.Gmail.ClientID = v
	}
	if v := viper.GetString("gmail_client_secret"); v != "" {
		cfg.Gmail.ClientSecret = v
	}
	if v := viper.GetString("gmail_redirect_url"); v != "" {
		cfg.Gmail.RedirectURL = v
	}
	if v := viper.GetString("gmail_refresh_token"); v != "" {
		cfg.Gmail.RefreshToken = v
	}
	if v := viper.GetString("gmail_sender"); v != "" {
		cfg.Gmail.Sender = v
	}

	// DeepSeek
	cfg.DeepSeek.APIKey = viper.GetString("deepseek.api_key")
	cfg.DeepSeek.Model = viper.GetString("deepseek.model")
	cfg.DeepSeek.BaseURL = viper.GetString("deepseek.base_url")
	if v := viper.GetString("deepseek_api_key"); v != "" {
		cfg.DeepSeek.APIKey = v
	}

	// Chat
	cfg.Chat.MaxUsers = viper.GetInt("chat.max_users")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("chat.max_users", 4096)
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
