package config

import (
	"fmt"
	"time"

	"github.com/VorteXproCR/Expense-Tracker/pkg/mq"
	"github.com/VorteXproCR/Expense-Tracker/pkg/mysql"
	"github.com/spf13/viper"
)

type Config struct {
	API      API          `mapstructure:"api"`
	Database mysql.Config `mapstructure:"database"`
	RabbitMQ mq.Config    `mapstructure:"rabbitmq"`
	Events   Events       `mapstructure:"events"`
	Metrics  Metrics      `mapstructure:"metrics"`
	Client   Client       `mapstructure:"client"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Events struct {
	Queue        string        `mapstructure:"queue"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	BatchSize    int           `mapstructure:"batch_size"`
}

type Metrics struct {
	Port string `mapstructure:"port"`
}

type Client struct {
	BaseURL    string        `mapstructure:"base_url"`
	MaxRetries int           `mapstructure:"max_retries"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

func Load() (cfg *Config, err error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	err = viper.ReadInConfig()
	if err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
