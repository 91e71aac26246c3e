// Package config loads daemon configuration from environment variables.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/yourusername/lexicode/internal/platform"
)

// Config holds all runtime configuration for Lexicode.
type Config struct {
	Port    string
	WorkDir string
	DBPath  string

	// AlphabetPath points at a JSON alphabet file. Empty means the built-in
	// reference alphabet.
	AlphabetPath string

	// ResultPrefix and ResultSuffix decorate encode results on the web page
	// and over Telegram. The codec itself never sees them.
	ResultPrefix string
	ResultSuffix string

	HistoryRetentionDays int
	PruneCron            string

	TelegramToken  string
	TelegramChatID int64
}

// Load reads environment variables and returns a Config.
// Uses sensible defaults for optional fields.
func Load() *Config {
	workDir := getEnv("WORK_DIR", platform.DefaultWorkDir())
	chatID, _ := strconv.ParseInt(os.Getenv("TELEGRAM_CHAT_ID"), 10, 64)

	return &Config{
		Port:    getEnv("PORT", "8080"),
		WorkDir: workDir,
		DBPath:  getEnv("DB_PATH", filepath.Join(workDir, "lexicode.db")),

		AlphabetPath: os.Getenv("ALPHABET_PATH"),

		ResultPrefix: getEnv("RESULT_PREFIX", "啊啊啊啊啊啊宝宝你是一个"),
		ResultSuffix: getEnv("RESULT_SUFFIX", "的小蛋糕"),

		HistoryRetentionDays: getEnvInt("HISTORY_RETENTION_DAYS", 30),
		PruneCron:            getEnv("PRUNE_CRON", "0 0 3 * * *"),

		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: chatID,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
