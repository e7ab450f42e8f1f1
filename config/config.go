package config

import (
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// MigrationsConfig MigrationsConfig.
type MigrationsConfig struct {
	DSN string `yaml:"dsn" mapstructure:"dsn"`
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// Config Application config definition.
type Config struct {
	DSN           string           `yaml:"dsn"             mapstructure:"dsn"`
	Migrations    MigrationsConfig `yaml:"migrations"      mapstructure:"migrations"`
	Redis         string           `yaml:"redis"           mapstructure:"redis"`
	FacetCacheTTL time.Duration    `yaml:"facet-cache-ttl" mapstructure:"facet-cache-ttl"`
}

// LoadConfig LoadConfig.
func LoadConfig(dir string) Config {
	cfg := Config{}

	viper.SetConfigName("defaults")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(dir)
	viper.SetEnvPrefix("CATALOG")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		logrus.Fatal(err)
	}

	return cfg
}
