package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"semar-etiquetas/form"
	"semar-etiquetas/render"
)

// Config holds the service settings read from the environment
type Config struct {
	Env         string
	Port        string
	BaseURL     string // used by headless Chrome to reach the render endpoint
	ChromePath  string
	DatabaseURL string // empty disables the print-job table
	LogLevel    string
	PrintDelay  time.Duration
	SessionTTL  time.Duration
	Branding    render.Branding
	PlacaTitle  string
}

// brandingFile is the YAML layout of BRANDING_FILE
// Example:
//
//	caption: SEMAR ENTREGA
//	copyright: © Todos os direitos reservados a JM
//	placaTitle: RESERVADO DRIVE
type brandingFile struct {
	render.Branding `yaml:",inline"`
	PlacaTitle      string `yaml:"placaTitle"`
}

// LoadDotEnv loads .env into the environment outside production
// Values in .env override variables already set
func LoadDotEnv(path string) error {
	if os.Getenv("ENV") == "production" {
		return nil
	}
	if err := godotenv.Overload(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration from the environment
func Load() (*Config, error) {
	cfg := &Config{
		Env:        getenv("ENV", "development"),
		Port:       strings.TrimPrefix(getenv("PORT", "8080"), ":"),
		ChromePath: os.Getenv("CHROME_PATH"),
		LogLevel:   getenv("LOG_LEVEL", "info"),
		Branding:   render.DefaultBranding,
		PlacaTitle: form.DefaultPlacaTitle,
	}
	cfg.BaseURL = strings.TrimSuffix(getenv("BASE_URL", "http://localhost:"+cfg.Port), "/")

	delayMS, err := strconv.Atoi(getenv("PRINT_DELAY_MS", "50"))
	if err != nil || delayMS < 0 {
		return nil, fmt.Errorf("invalid PRINT_DELAY_MS %q", os.Getenv("PRINT_DELAY_MS"))
	}
	cfg.PrintDelay = time.Duration(delayMS) * time.Millisecond

	cfg.SessionTTL, err = time.ParseDuration(getenv("SESSION_TTL", "2h"))
	if err != nil || cfg.SessionTTL <= 0 {
		return nil, fmt.Errorf("invalid SESSION_TTL %q", os.Getenv("SESSION_TTL"))
	}

	cfg.DatabaseURL = databaseURL()

	if path := os.Getenv("BRANDING_FILE"); path != "" {
		if err := cfg.loadBranding(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) loadBranding(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read branding file: %w", err)
	}
	var file brandingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse branding file: %w", err)
	}
	if file.Caption != "" {
		c.Branding.Caption = file.Caption
	}
	if file.Copyright != "" {
		c.Branding.Copyright = file.Copyright
	}
	if file.PlacaTitle != "" {
		c.PlacaTitle = file.PlacaTitle
	}
	return nil
}

// databaseURL returns DATABASE_URL or builds a DSN from DB_* variables
// Returns "" when neither is configured
func databaseURL() string {
	if connStr := os.Getenv("DATABASE_URL"); connStr != "" {
		return connStr
	}

	host := os.Getenv("DB_HOST")
	user := os.Getenv("DB_USER")
	dbname := os.Getenv("DB_NAME")
	if host == "" || user == "" || dbname == "" {
		return ""
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, getenv("DB_PORT", "5432"), user, os.Getenv("DB_PASSWORD"), dbname, getenv("DB_SSLMODE", "disable"))
}

// Addr is the listen address; 0.0.0.0 so containers accept outside connections
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
