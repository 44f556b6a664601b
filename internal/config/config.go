package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/riskibarqy/worldcup-etl/internal/platform/logging"
)

// Config stores runtime configuration for the pipeline.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	PipelineConfigPath      string
	DBURL                   string
	DBDisablePreparedBinary bool
	DBAutoMigrate           bool
	MigrationsDir           string
	UptraceEnabled          bool
	UptraceDSN              string
	LogLevel                logging.Level
}

// Load reads the environment, after merging an optional .env file from the
// working directory. Variables already set in the environment win.
func Load() (Config, error) {
	_ = godotenv.Load()

	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	autoMigrateDefault := "true"
	if appEnv == EnvProd {
		autoMigrateDefault = "false"
	}
	dbAutoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", autoMigrateDefault))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_AUTO_MIGRATE: %w", err)
	}

	dbURL, err := databaseURL()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("SERVICE_NAME", "worldcup-etl"),
		ServiceVersion:          getEnv("SERVICE_VERSION", "dev"),
		PipelineConfigPath:      getEnv("PIPELINE_CONFIG", "config/pipeline.yaml"),
		DBURL:                   dbURL,
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		DBAutoMigrate:           dbAutoMigrate,
		MigrationsDir:           strings.TrimSpace(getEnv("MIGRATIONS_DIR", "")),
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
		LogLevel:                logging.ParseLevel(getEnv("LOG_LEVEL", "info")),
	}

	return cfg, nil
}

// databaseURL prefers DB_URL and otherwise assembles one from the POSTGRES_* credentials.
func databaseURL() (string, error) {
	if raw := strings.TrimSpace(os.Getenv("DB_URL")); raw != "" {
		return raw, nil
	}

	port, err := getEnvAsInt("POSTGRES_PORT", 5432)
	if err != nil {
		return "", fmt.Errorf("parse POSTGRES_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return "", fmt.Errorf("POSTGRES_PORT must be between 1 and 65535")
	}

	return BuildDSN(Credentials{
		Host:     getEnv("POSTGRES_HOST", "localhost"),
		Port:     port,
		User:     getEnv("POSTGRES_USER", "postgres"),
		Password: getEnv("POSTGRES_PASSWORD", "postgres"),
		Database: getEnv("POSTGRES_DB", "worldcup"),
		SSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}), nil
}

// Credentials are the discrete connection settings of a Postgres database.
type Credentials struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// BuildDSN renders credentials as a postgres:// URL with escaped user info.
func BuildDSN(c Credentials) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Database,
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
