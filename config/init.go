package config

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

func Init() {
	once.Do(func() {
		instance = load()
	})
}

func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

func load() *Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("falha ao ler config: %v", err)
		}
		// sem arquivo de config: segue com defaults + variáveis de ambiente
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		log.Fatalf("falha ao decodificar config: %v", err)
	}

	// variáveis de ambiente (CADPRO_*) têm precedência sobre o arquivo
	if err := envconfig.Process("cadpro", cfg); err != nil {
		log.Fatalf("falha ao processar variáveis de ambiente: %v", err)
	}

	if cfg.Mode != ModeRelease {
		cfg.Mode = ModeDebug
	}
	cfg.Prefix = strings.Trim(cfg.Prefix, "/")
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("Host", "0.0.0.0")
	v.SetDefault("Port", "8080")
	v.SetDefault("Prefix", "api")
	v.SetDefault("Mode", string(ModeDebug))
	v.SetDefault("Mysql.Host", "127.0.0.1")
	v.SetDefault("Mysql.Port", "3306")
	v.SetDefault("Mysql.Username", "root")
	v.SetDefault("Mysql.DBName", "cadpro")
	v.SetDefault("Redis.Host", "127.0.0.1")
	v.SetDefault("Redis.Port", "6379")
	v.SetDefault("Redis.DB", 0)
	v.SetDefault("Storage.driver", "local")
	v.SetDefault("Storage.home", "./uploads")
	v.SetDefault("Storage.base_url", "/media")
	v.SetDefault("Log.level", "info")
	v.SetDefault("Log.max_size", 100)
	v.SetDefault("Log.max_backups", 3)
	v.SetDefault("Log.max_age", 28)
}
