package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string     `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile    string     `yaml:"log-file" env:"LOG_FILE" env-default:""`
	Game       Game       `yaml:"game"`
	Scoreboard Scoreboard `yaml:"scoreboard"`
}

type Game struct {
	Mode        string `yaml:"mode" env:"GAME_MODE" env-default:""`
	BoardSize   int    `yaml:"board-size" env:"GAME_BOARD_SIZE" env-default:"3"`
	PlayerOne   string `yaml:"player-one" env:"GAME_PLAYER_ONE" env-default:"❌"`
	PlayerTwo   string `yaml:"player-two" env:"GAME_PLAYER_TWO" env-default:"⭕"`
	EmptyTile   string `yaml:"empty-tile" env:"GAME_EMPTY_TILE" env-default:"⬜"`
	BlockedTile string `yaml:"blocked-tile" env:"GAME_BLOCKED_TILE" env-default:"⬛"`
}

type Scoreboard struct {
	Backend string `yaml:"backend" env:"SCOREBOARD_BACKEND" env-default:"memory"`
	Redis   Redis  `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file, or from the environment when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
