package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string `yaml:"env" env-default:"prod"`
	HTTPServer `yaml:"http_server"`

	DBUser     string `yaml:"db_user" env-required:"true"`
	DBPassword string `yaml:"db_password"`
	DBHost     string `yaml:"db_host" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env-default:"3306"`
	DBName     string `yaml:"db_name" env-required:"true"`

	SessionSecret string `yaml:"session_secret" env:"SESSION_SECRET" env-required:"true"`

	AdminLogin string `yaml:"admin_login"`
	AdminPass  string `yaml:"admin_pass"`

	// Upload cap for template files, bytes.
	MaxTemplateSize int64 `yaml:"max_template_size" env-default:"10485760"`
}

type HTTPServer struct {
	Address string        `yaml:"address" env-default:"localhost:4002"`
	Timeout time.Duration `yaml:"timeout" env-default:"30s"`
	// Batch printing may take up to two minutes; the response write gets its
	// own, longer budget.
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"3m"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

func MustConfig() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/local.yaml"
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config %s: %s", configPath, err)
	}

	return &cfg
}
