package config

import "time"

// PurgeConfig содержит настройки фоновой очистки корзины.
type PurgeConfig struct {
	Enabled       bool   `yaml:"enabled" env:"NOTES_PURGE_ENABLED" env-default:"true"`
	RetentionDays int    `yaml:"retention_days" env:"NOTES_PURGE_RETENTION_DAYS" env-default:"30"`
	Interval      string `yaml:"interval" env:"NOTES_PURGE_INTERVAL" env-default:"24h"`
}

// GetInterval возвращает интервал между запусками очистки.
func (p *PurgeConfig) GetInterval() time.Duration {
	duration, err := time.ParseDuration(p.Interval)
	if err != nil {
		return 24 * time.Hour
	}
	return duration
}
