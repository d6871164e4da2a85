package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigName имя необязательного файла настроек
const ConfigName = "battlecity.cfg.json"

// EnvPrefix префикс переменных окружения (BATTLECITY_RULES_STARTLIVES и т.п.)
const EnvPrefix = "BATTLECITY"

// RulesSettings игровые ограничения
type RulesSettings struct {
	PlayerBullets int `json:"playerBullets" mapstructure:"playerBullets"` // Снарядов на каждого игрока
	EnemyBullets  int `json:"enemyBullets" mapstructure:"enemyBullets"`   // Снарядов на всех врагов вместе
	MaxEnemies    int `json:"maxEnemies" mapstructure:"maxEnemies"`
	StartLives    int `json:"startLives" mapstructure:"startLives"`
	StartLevel    int `json:"startLevel" mapstructure:"startLevel"`
	FinalLevel    int `json:"finalLevel" mapstructure:"finalLevel"`
}

// AudioSettings настройки звука
type AudioSettings struct {
	Enabled bool    `json:"enabled" mapstructure:"enabled"`
	Volume  float64 `json:"volume" mapstructure:"volume"` // 0..1
}

// StorageSettings настройки хранения рекорда
type StorageSettings struct {
	Type string `json:"type" mapstructure:"type"` // sqlite | memory
	Path string `json:"path" mapstructure:"path"`
}

// DefsSettings пути к файлам переопределения данных
type DefsSettings struct {
	Enemies string `json:"enemies" mapstructure:"enemies"`
}

// Settings настройки времени выполнения
type Settings struct {
	Seed     uint32          `json:"seed" mapstructure:"seed"`
	LogLevel string          `json:"logLevel" mapstructure:"logLevel"`
	LogFile  string          `json:"logFile" mapstructure:"logFile"`
	Rules    RulesSettings   `json:"rules" mapstructure:"rules"`
	Audio    AudioSettings   `json:"audio" mapstructure:"audio"`
	Storage  StorageSettings `json:"storage" mapstructure:"storage"`
	Defs     DefsSettings    `json:"defs" mapstructure:"defs"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", DefaultSeed)
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")

	v.SetDefault("rules.playerBullets", 1)
	v.SetDefault("rules.enemyBullets", 1)
	v.SetDefault("rules.maxEnemies", MaxActiveEnemies)
	v.SetDefault("rules.startLives", PlayerLives)
	v.SetDefault("rules.startLevel", 1)
	v.SetDefault("rules.finalLevel", MaxLevels)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.5)

	v.SetDefault("storage.type", "sqlite")
	v.SetDefault("storage.path", "battlecity.db")

	v.SetDefault("defs.enemies", "")
}

// Default настройки без файла и окружения
func Default() Settings {
	v := viper.New()
	setDefaults(v)
	var s Settings
	_ = v.Unmarshal(&s)
	return s
}

// Load читает настройки из configDir (файл необязателен) и окружения.
func Load(configDir string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(ConfigName)
	v.AddConfigPath(configDir)
	v.SetConfigType("json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	s.normalize()
	return s, nil
}

// normalize приводит значения к допустимым диапазонам
func (s *Settings) normalize() {
	if s.Rules.PlayerBullets < 1 {
		s.Rules.PlayerBullets = 1
	}
	if s.Rules.EnemyBullets < 1 {
		s.Rules.EnemyBullets = 1
	}
	if s.Rules.MaxEnemies < 1 || s.Rules.MaxEnemies > MaxActiveEnemies {
		s.Rules.MaxEnemies = MaxActiveEnemies
	}
	if s.Rules.StartLives < 1 {
		s.Rules.StartLives = PlayerLives
	}
	if s.Rules.FinalLevel < 1 || s.Rules.FinalLevel > MaxLevels {
		s.Rules.FinalLevel = MaxLevels
	}
	if s.Rules.StartLevel < 1 {
		s.Rules.StartLevel = 1
	}
	if s.Rules.StartLevel > s.Rules.FinalLevel {
		s.Rules.StartLevel = s.Rules.FinalLevel
	}
	if s.Audio.Volume < 0 {
		s.Audio.Volume = 0
	}
	if s.Audio.Volume > 1 {
		s.Audio.Volume = 1
	}
}
