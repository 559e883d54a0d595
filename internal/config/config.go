package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName           string
	AppVersion        string
	AppPort           string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	DbAutoMigrate     bool
	DbMaxOpenConns    int
	DbMaxIdleConns    int
	DbConnMaxLifetime time.Duration
	TrustedProxies    []string
	TranslationFolder string
	BcryptCost        int
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppName:           getEnv("APP_NAME", "taskboard"),
		AppVersion:        getEnv("APP_VERSION", "dev"),
		AppPort:           getEnv("APP_PORT", "8080"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "taskboard"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "taskboard"),
		DbName:            getEnv("MYSQL_DATABASE", "taskboard"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		DbAutoMigrate:     getEnvBool("DB_AUTO_MIGRATE", false),
		DbMaxOpenConns:    getEnvInt("MYSQL_MAX_OPEN_CONNS", 25),
		DbMaxIdleConns:    getEnvInt("MYSQL_MAX_IDLE_CONNS", 10),
		DbConnMaxLifetime: time.Duration(getEnvInt("MYSQL_CONN_MAX_LIFETIME_SECONDS", 300)) * time.Second,
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		BcryptCost:        getEnvInt("BCRYPT_COST", 0),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

// getEnvInt returns fallback for unset or unparsable values.
func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
