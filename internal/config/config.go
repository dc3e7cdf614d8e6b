package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"FWCLI_LOG_LEVEL" env-default:"info"`
	API         API         `yaml:"api"`
	Session     Session     `yaml:"session"`
	Redis       Redis       `yaml:"redis"`
	Leaderboard Leaderboard `yaml:"leaderboard"`
	Glass       Glass       `yaml:"glass"`
}

type API struct {
	BaseURL string        `yaml:"base-url" env:"FWCLI_BASE_URL" env-default:"http://challenge.uclan.ac.uk:8080/preston"`
	DocsURL string        `yaml:"docs-url" env:"FWCLI_DOCS_URL" env-default:"https://github.com/UCLanTeamNaN/api-docs/blob/master/docs"`
	AppID   string        `yaml:"app-id" env:"FWCLI_APP_ID" env-default:"8A-TestCLI"`
	Timeout time.Duration `yaml:"timeout" env:"FWCLI_TIMEOUT" env-default:"0s"`
}

type Session struct {
	Store     string `yaml:"store" env:"FWCLI_SESSION_STORE" env-default:"file"`
	TokenPath string `yaml:"token-path" env:"FWCLI_TOKEN_PATH" env-default:".sessiontoken"`
	RedisKey  string `yaml:"redis-key" env:"FWCLI_REDIS_KEY" env-default:"fwcli:sessiontoken"`
}

type Redis struct {
	Host string `yaml:"host" env:"FWCLI_REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"FWCLI_REDIS_PORT" env-default:"6379"`
}

type Leaderboard struct {
	HighlightTeam string `yaml:"highlight-team" env:"FWCLI_HIGHLIGHT_TEAM" env-default:"NoName8A"`
}

type Glass struct {
	Port string `yaml:"port" env:"FWCLI_GLASS_PORT" env-default:"9090"`
}

// Load - reads config.yml at path, falling back to the environment alone when the file is missing.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
