// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/magabrotheeeer/paytracker/internal/models"
)

// Config общая структура для хранения настроек
type Config struct {
	Env              string                   `yaml:"env" env:"ENV" env-default:"local"`
	SeedDemoData     bool                     `yaml:"seed_demo_data" env:"SEED_DEMO_DATA" env-default:"false"`
	ServiceTemplates []models.ServiceTemplate `yaml:"service_templates"`
	HTTPServer       `yaml:"http_server"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// DefaultServiceTemplates справочник услуг по умолчанию. Используется, когда
// в конфиге не задан собственный список.
func DefaultServiceTemplates() []models.ServiceTemplate {
	return []models.ServiceTemplate{
		{Name: "Apartment Cleaning", DefaultRate: 25, EstimatedHours: 3},
		{Name: "Deep Cleaning", DefaultRate: 30, EstimatedHours: 4},
		{Name: "Delivery Service", DefaultRate: 20, EstimatedHours: 1},
		{Name: "Administrative Work", DefaultRate: 22, EstimatedHours: 2},
		{Name: "Maintenance", DefaultRate: 28, EstimatedHours: 2},
		{Name: "Organization", DefaultRate: 24, EstimatedHours: 3},
	}
}

// MustLoad загружает конфиг из файла по пути из CONFIG_PATH.
// Завершает процесс при отсутствии файла или ошибке разбора.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	if len(cfg.ServiceTemplates) == 0 {
		cfg.ServiceTemplates = DefaultServiceTemplates()
	}
	return &cfg
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"SeedDemoData: %t\n"+
			"ServiceTemplates: %d\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n",
		c.Env,
		c.SeedDemoData,
		len(c.ServiceTemplates),
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
	)
}
