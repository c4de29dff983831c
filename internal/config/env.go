package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string
}

func LoadEnv() Env {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	return Env{
		AppAddr: getEnv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getEnv("MYSQL_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("MYSQL_PASSWORD")),
		DBHost: getEnv("MYSQL_HOST", "127.0.0.1:3306"),
		DBName: getEnv("MYSQL_DB", "linea_autobuses"),

		JWTSecret: getEnv("SECRET_KEY", "dev-secret-change-me"),
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
