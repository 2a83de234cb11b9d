package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the API reads from the environment.
type Config struct {
	AppEnv   string
	Port     string
	LogLevel string

	StaticDir        string
	PlantCatalogPath string
	CORSOrigins      []string

	GeminiAPIKey string
	GeminiModel  string
	ImagenModel  string

	LlamaAPIKey string
	LlamaModel  string
	LlamaAPIURL string

	DatabaseURL string

	R2 R2Config

	SMTP SMTPConfig
}

type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

// Enabled reports whether every R2 setting is present.
func (c R2Config) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != "" &&
		c.Bucket != "" && c.PublicBaseURL != ""
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	AdminEmail string
}

// LoadDotEnv reads .env outside production. A missing file is not an error.
func LoadDotEnv() {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}
}

// Load reads the configuration from the process environment.
func Load() Config {
	cfg := Config{
		AppEnv:   getenv("APP_ENV", "development"),
		Port:     getenv("PORT", "8000"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		StaticDir:        getenv("STATIC_DIR", "static"),
		PlantCatalogPath: os.Getenv("PLANT_CATALOG_PATH"),
		CORSOrigins:      splitList(getenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		ImagenModel:  getenv("IMAGEN_MODEL", "imagen-3.0-generate-001"),

		LlamaAPIKey: os.Getenv("LLAMA_API_KEY"),
		LlamaModel:  os.Getenv("LLAMA_MODEL"),
		LlamaAPIURL: os.Getenv("LLAMA_API_URL"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		R2: R2Config{
			Endpoint:      os.Getenv("R2_ENDPOINT"),
			AccessKey:     os.Getenv("R2_ACCESS_KEY"),
			SecretKey:     os.Getenv("R2_SECRET_KEY"),
			Bucket:        os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL: strings.TrimRight(os.Getenv("R2_PUBLIC_BASE_URL"), "/"),
		},

		SMTP: SMTPConfig{
			Host:       getenv("SMTP_HOST", "smtp.gmail.com"),
			Port:       getenvInt("SMTP_PORT", 587),
			Username:   os.Getenv("SMTP_USERNAME"),
			Password:   os.Getenv("SMTP_PASSWORD"),
			AdminEmail: os.Getenv("ADMIN_EMAIL"),
		},
	}

	if cfg.SMTP.AdminEmail == "" {
		cfg.SMTP.AdminEmail = cfg.SMTP.Username
	}

	return cfg
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
