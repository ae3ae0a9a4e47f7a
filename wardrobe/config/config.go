package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/wardrobe-service/pkg/auth"
	"github.com/Astemirdum/wardrobe-service/pkg/circuit_breaker"
	"github.com/Astemirdum/wardrobe-service/pkg/kafka"
	"github.com/Astemirdum/wardrobe-service/pkg/logger"
	"github.com/Astemirdum/wardrobe-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"WARDROBE_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"WARDROBE_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// Admin is the account created on first start when no teacher exists yet.
type Admin struct {
	Name     string `envconfig:"ADMIN_NAME" default:"Administrator"`
	Email    string `envconfig:"ADMIN_EMAIL"`
	Password string `envconfig:"ADMIN_PASSWORD" json:"-"`
}

type Config struct {
	Server         HTTPServer             `yaml:"server"`
	Database       postgres.DB            `yaml:"db"`
	Kafka          kafka.Config           `yaml:"kafka"`
	Auth           auth.Config            `yaml:"auth"`
	CircuitBreaker circuit_breaker.Config `yaml:"circuitBreaker"`
	Admin          Admin
	Log            logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	masked := *cfg
	masked.Database.Password = "***"
	masked.Auth.Secret = "***"
	jscfg, _ := json.MarshalIndent(masked, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
