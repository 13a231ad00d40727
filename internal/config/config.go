package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/betting-analytics/internal/platform/logging"
)

// ErrMissingDatabaseURL is fatal: the service cannot start without a store.
var ErrMissingDatabaseURL = errors.New("DATABASE_URL is required")

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	ShutdownTimeout             time.Duration
	LogLevel                    logging.Level
	StorageBackend              string
	DBURL                       string
	DBMaxOpenConns              int
	DBMaxIdleConns              int
	DBConnMaxLifetime           time.Duration
	DBPingTimeout               time.Duration
	DBAutoMigrate               bool
	DBDisablePreparedBinary     bool
	CORSAllowedOrigins          []string
	SwaggerEnabled              bool
	IdentityBaseURL             string
	IdentityIntrospectPath      string
	IdentityAdminKey            string
	IdentityTimeout             time.Duration
	IdentityCircuitEnabled      bool
	IdentityCircuitFailureCount int
	IdentityCircuitOpenTimeout  time.Duration
	IdentityCircuitHalfOpenMax  int
	FantasyMaxRosterSize        int
	FantasyMaxPlayersPerClub    int
	UptraceEnabled              bool
	UptraceDSN                  string
	PprofEnabled                bool
	PprofAddr                   string
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "betting-analytics-api"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		IdentityBaseURL:        strings.TrimSpace(getEnv("IDENTITY_BASE_URL", "http://localhost:8081")),
		IdentityIntrospectPath: strings.TrimSpace(getEnv("IDENTITY_INTROSPECT_PATH", "/v1/auth/introspect")),
		IdentityAdminKey:       strings.TrimSpace(getEnv("IDENTITY_ADMIN_KEY", "")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	if err := loadHTTP(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadStorage(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadIdentity(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadFantasy(&cfg); err != nil {
		return Config{}, err
	}
	if err := loadObservability(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadHTTP(cfg *Config) error {
	swaggerDefault := "true"
	if cfg.AppEnv == EnvProd {
		swaggerDefault = "false"
	}
	swaggerEnabled, err := strconv.ParseBool(getEnv("SWAGGER_ENABLED", swaggerDefault))
	if err != nil {
		return fmt.Errorf("parse SWAGGER_ENABLED: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}
	shutdownTimeout, err := time.ParseDuration(getEnv("APP_SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return fmt.Errorf("parse APP_SHUTDOWN_TIMEOUT: %w", err)
	}
	if shutdownTimeout <= 0 {
		return fmt.Errorf("APP_SHUTDOWN_TIMEOUT must be > 0")
	}

	cfg.SwaggerEnabled = swaggerEnabled
	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.ShutdownTimeout = shutdownTimeout
	return nil
}

func loadStorage(cfg *Config) error {
	backend := strings.ToLower(strings.TrimSpace(getEnv("STORAGE_BACKEND", StoragePostgres)))
	switch backend {
	case StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND %q: valid values are %s, %s", backend, StoragePostgres, StorageMemory)
	}
	cfg.StorageBackend = backend

	cfg.DBURL = strings.TrimSpace(getEnv("DATABASE_URL", ""))
	if backend == StoragePostgres && cfg.DBURL == "" {
		return ErrMissingDatabaseURL
	}

	maxOpen, err := getEnvAsInt("DB_MAX_OPEN_CONNS", 1)
	if err != nil {
		return fmt.Errorf("parse DB_MAX_OPEN_CONNS: %w", err)
	}
	if maxOpen < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be >= 1")
	}
	maxIdle, err := getEnvAsInt("DB_MAX_IDLE_CONNS", 1)
	if err != nil {
		return fmt.Errorf("parse DB_MAX_IDLE_CONNS: %w", err)
	}
	if maxIdle < 0 || maxIdle > maxOpen {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS")
	}
	connMaxLifetime, err := time.ParseDuration(getEnv("DB_CONN_MAX_LIFETIME", "30m"))
	if err != nil {
		return fmt.Errorf("parse DB_CONN_MAX_LIFETIME: %w", err)
	}
	pingTimeout, err := time.ParseDuration(getEnv("DB_PING_TIMEOUT", "5s"))
	if err != nil {
		return fmt.Errorf("parse DB_PING_TIMEOUT: %w", err)
	}
	if pingTimeout <= 0 {
		return fmt.Errorf("DB_PING_TIMEOUT must be > 0")
	}
	autoMigrate, err := strconv.ParseBool(getEnv("DB_AUTO_MIGRATE", "false"))
	if err != nil {
		return fmt.Errorf("parse DB_AUTO_MIGRATE: %w", err)
	}
	disablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	cfg.DBMaxOpenConns = maxOpen
	cfg.DBMaxIdleConns = maxIdle
	cfg.DBConnMaxLifetime = connMaxLifetime
	cfg.DBPingTimeout = pingTimeout
	cfg.DBAutoMigrate = autoMigrate
	cfg.DBDisablePreparedBinary = disablePreparedBinary
	return nil
}

func loadIdentity(cfg *Config) error {
	if cfg.IdentityBaseURL == "" {
		return fmt.Errorf("IDENTITY_BASE_URL cannot be empty")
	}

	timeout, err := time.ParseDuration(getEnv("IDENTITY_TIMEOUT", "3s"))
	if err != nil {
		return fmt.Errorf("parse IDENTITY_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return fmt.Errorf("IDENTITY_TIMEOUT must be > 0")
	}
	circuitEnabled, err := strconv.ParseBool(getEnv("IDENTITY_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return fmt.Errorf("parse IDENTITY_CIRCUIT_ENABLED: %w", err)
	}
	failureCount, err := getEnvAsInt("IDENTITY_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return fmt.Errorf("parse IDENTITY_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if failureCount < 1 {
		return fmt.Errorf("IDENTITY_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	openTimeout, err := time.ParseDuration(getEnv("IDENTITY_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return fmt.Errorf("parse IDENTITY_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if openTimeout <= 0 {
		return fmt.Errorf("IDENTITY_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	halfOpenMax, err := getEnvAsInt("IDENTITY_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return fmt.Errorf("parse IDENTITY_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if halfOpenMax < 1 {
		return fmt.Errorf("IDENTITY_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	cfg.IdentityTimeout = timeout
	cfg.IdentityCircuitEnabled = circuitEnabled
	cfg.IdentityCircuitFailureCount = failureCount
	cfg.IdentityCircuitOpenTimeout = openTimeout
	cfg.IdentityCircuitHalfOpenMax = halfOpenMax
	return nil
}

func loadFantasy(cfg *Config) error {
	maxRoster, err := getEnvAsInt("FANTASY_MAX_ROSTER_SIZE", 25)
	if err != nil {
		return fmt.Errorf("parse FANTASY_MAX_ROSTER_SIZE: %w", err)
	}
	if maxRoster < 0 {
		return fmt.Errorf("FANTASY_MAX_ROSTER_SIZE must be >= 0")
	}
	maxPerClub, err := getEnvAsInt("FANTASY_MAX_PLAYERS_PER_CLUB", 0)
	if err != nil {
		return fmt.Errorf("parse FANTASY_MAX_PLAYERS_PER_CLUB: %w", err)
	}
	if maxPerClub < 0 {
		return fmt.Errorf("FANTASY_MAX_PLAYERS_PER_CLUB must be >= 0")
	}

	cfg.FantasyMaxRosterSize = maxRoster
	cfg.FantasyMaxPlayersPerClub = maxPerClub
	return nil
}

func loadObservability(cfg *Config) error {
	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	cfg.UptraceEnabled = uptraceEnabled
	cfg.UptraceDSN = uptraceDSN
	cfg.PprofEnabled = pprofEnabled
	cfg.PprofAddr = pprofAddr
	cfg.PyroscopeEnabled = pyroscopeEnabled
	cfg.PyroscopeServerAddress = pyroscopeServerAddress
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	cfg.PyroscopeAuthToken = strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", ""))
	cfg.PyroscopeBasicAuthUser = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", ""))
	cfg.PyroscopeBasicAuthPassword = strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", ""))
	cfg.PyroscopeUploadRate = pyroscopeUploadRate
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	return nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
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

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
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
