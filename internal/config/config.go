package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type CommerceConfig struct {
	Env            string `yaml:"env" env-default:"local"`
	HTTPServer     `yaml:"http_server"`
	CommerceDB     `yaml:"commerce_db"`
	KafkaService   `yaml:"kafka-service"`
	Pagination     `yaml:"pagination"`
	StockConfig    `yaml:"stock"`
	MigrationsPath string `yaml:"migrations_path"`
	JWTSecret      string `yaml:"jwt_secret" env:"JWT_SECRET"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type CommerceDB struct {
	Dsn             string        `yaml:"dsn"`
	MaxIdleConns    int           `yaml:"max_idle_conns" env-default:"10"`
	MaxOpenConns    int           `yaml:"max_open_conns" env-default:"100"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env-default:"1h"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"stock-alerts"`
}

type Pagination struct {
	DefaultPageSize int `yaml:"default_page_size" env-default:"20"`
}

type StockConfig struct {
	DefaultAlertThreshold int64 `yaml:"default_alert_threshold" env-default:"5"`
}

func MustLoad() *CommerceConfig {

	// Processing env config variable and file
	configPath := os.Getenv("COMMERCE_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("COMMERCE_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CommerceConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
