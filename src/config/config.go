package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Service      ServiceConfig      `mapstructure:"service"`
	Databases    DatabasesConfig    `mapstructure:"databases"`
	InventoryAPI InventoryAPIConfig `mapstructure:"inventoryApi"`
	Auth         AuthConfig         `mapstructure:"auth"`
	AWS          AWSConfig          `mapstructure:"aws"`
	Reports      ReportsConfig      `mapstructure:"reports"`
}

type ServiceConfig struct {
	Port     string `mapstructure:"port"`
	LogLevel string `mapstructure:"logLevel"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// InventoryAPIConfig points at the remote inventory data API that owns all
// asset, assignment, maintenance and location records.
type InventoryAPIConfig struct {
	BaseURL string `mapstructure:"baseUrl"`
	Token   string `mapstructure:"token"`
}

type AuthConfig struct {
	// TokenSecret signs session tokens. When AWS is enabled it is replaced by
	// the value of SecretName at startup.
	TokenSecret     string `mapstructure:"tokenSecret"`
	SecretName      string `mapstructure:"secretName"`
	TokenTTLMinutes int    `mapstructure:"tokenTtlMinutes"`
}

type AWSConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Region  string `mapstructure:"region"`
}

type ReportsConfig struct {
	// OutputDir receives files produced by scheduled report runs.
	OutputDir string `mapstructure:"outputDir"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	// Optional .env for local overrides; missing file is fine.
	_ = godotenv.Load()

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}
	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
