package env

import (
	"bingo_backend/internal/config"
	"bingo_backend/internal/model"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	gameConfigEnvName = "GAME_CONFIG"

	defaultGameConfigPath = "config.yaml"
)

type gameFile struct {
	Game gameSection `yaml:"game"`
}

type gameSection struct {
	Size       int `yaml:"size"`
	ColumnSpan int `yaml:"column_span"`
	WinLines   int `yaml:"win_lines"`
}

type gameConfig struct {
	rules model.Rules
}

// GameConfigPath Путь к YAML с правилами из окружения или по умолчанию
func GameConfigPath() string {
	path := os.Getenv(gameConfigEnvName)
	if len(path) == 0 {
		return defaultGameConfigPath
	}
	return path
}

// NewGameConfigFromYAML Читает правила партии. Отсутствующий файл и пустые поля
// заменяются классическими значениями 5x5 / 15 / 3
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	rules := model.DefaultRules()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &gameConfig{rules: rules}, nil
	case err != nil:
		return nil, fmt.Errorf("read game config: %w", err)
	}

	var file gameFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	if file.Game.Size != 0 {
		rules.Size = file.Game.Size
	}
	if file.Game.ColumnSpan != 0 {
		rules.ColumnSpan = file.Game.ColumnSpan
	}
	if file.Game.WinLines != 0 {
		rules.WinLines = file.Game.WinLines
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return &gameConfig{rules: rules}, nil
}

func (g *gameConfig) Size() int {
	return g.rules.Size
}

func (g *gameConfig) ColumnSpan() int {
	return g.rules.ColumnSpan
}

func (g *gameConfig) WinLines() int {
	return g.rules.WinLines
}
