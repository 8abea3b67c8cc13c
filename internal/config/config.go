package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort string

	// Vazio = coleções só em memória (sessão local)
	DBUrl string

	// Vazio = staging (carrinho/perfil) no mesmo store das coleções
	RedisAddr string

	JWTSecret string

	// Hash bcrypt do PIN de admin
	AdminPINHash string

	AssistURL     string
	AssistTimeout time.Duration
}

func Load() *Config {
	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		JWTSecret:     getEnv("JWT_SECRET", "changeme"),
		AdminPINHash:  getEnv("ADMIN_PIN_HASH", ""),
		AssistURL:     getEnv("ASSIST_URL", ""),
		AssistTimeout: time.Duration(getEnvInt("ASSIST_TIMEOUT_SECONDS", 10)) * time.Second,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
