package config

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env:"APP_ENV" env-default:"local"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env:"LISTEN_BIND_IP" env-default:"0.0.0.0"`
		Port   string `yaml:"port" env:"LISTEN_PORT" env-default:"3001"`
	} `yaml:"listen"`
	Odoo struct {
		Url      string `yaml:"url" env:"ODOO_URL" env-default:""`
		Db       string `yaml:"db" env:"ODOO_DB" env-default:""`
		Username string `yaml:"username" env:"ODOO_USERNAME" env-default:""`
		Password string `yaml:"password" env:"ODOO_PASSWORD" env-default:""`
		ApiKey   string `yaml:"api_key" env:"ODOO_API_KEY" env-default:""`
		Protocol string `yaml:"protocol" env:"ODOO_PROTOCOL" env-default:"jsonrpc"`
		Timeout  int    `yaml:"timeout" env:"ODOO_TIMEOUT" env-default:"30"`
		Rate     int    `yaml:"rate" env:"ODOO_RATE" env-default:"5"`
		Burst    int    `yaml:"burst" env:"ODOO_BURST" env-default:"10"`
	} `yaml:"odoo"`
	Seed struct {
		DatasetPath string `yaml:"dataset_path" env:"SEED_DATASET_PATH" env-default:""`
	} `yaml:"seed"`
	SQL struct {
		Enabled  bool   `yaml:"enabled" env:"SQL_ENABLED" env-default:"false"`
		Driver   string `yaml:"driver" env-default:"mysql"`
		HostName string `yaml:"hostname" env:"SQL_HOSTNAME" env-default:"localhost"`
		UserName string `yaml:"username" env:"SQL_USERNAME" env-default:"root"`
		Password string `yaml:"password" env:"SQL_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"SQL_DATABASE" env-default:""`
		Port     string `yaml:"port" env:"SQL_PORT" env-default:"3306"`
		Prefix   string `yaml:"prefix" env-default:""`
	} `yaml:"sql"`
	Mongo struct {
		Enabled     bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host        string `yaml:"host" env:"MONGO_HOST" env-default:"localhost"`
		Port        string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User        string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password    string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database    string `yaml:"database" env:"MONGO_DATABASE" env-default:"odooclient"`
		ExpiredDays int    `yaml:"expired_days" env-default:"30"`
	} `yaml:"mongo"`
	Telegram struct {
		Enabled bool   `yaml:"enabled" env:"TG_ENABLED" env-default:"false"`
		BotName string `yaml:"bot_name" env:"TG_BOT_NAME" env-default:""`
		ApiKey  string `yaml:"api_key" env:"TG_API_KEY" env-default:""`
		AdminId string `yaml:"admin_id" env:"TG_ADMIN_ID" env-default:""`
	} `yaml:"telegram"`
}

// Secret returns the credential used for RPC calls: the API key when
// set, otherwise the password.
func (c *Config) Secret() string {
	if c.Odoo.ApiKey != "" {
		return c.Odoo.ApiKey
	}
	return c.Odoo.Password
}

var instance *Config
var once sync.Once

// Load reads configuration from the YAML file at path, with environment
// variables taking effect as overrides and defaults. When the file does
// not exist the environment alone is used.
func Load(path string) (*Config, error) {
	conf := &Config{}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(conf); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
		return conf, nil
	}

	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%s; %s", err, desc)
	}
	return conf, nil
}

func MustLoad(path string) *Config {
	once.Do(func() {
		conf, err := Load(path)
		if err != nil {
			log.Fatal(err)
		}
		instance = conf
	})
	return instance
}
