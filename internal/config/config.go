package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/clubdesk/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                         string
	ServiceName                    string
	ServiceVersion                 string
	HTTPAddr                       string
	DBURL                          string
	DBDisablePreparedBinary        bool
	CacheEnabled                   bool
	CacheTTL                       time.Duration
	CORSAllowedOrigins             []string
	ReadTimeout                    time.Duration
	WriteTimeout                   time.Duration
	PprofEnabled                   bool
	PprofAddr                      string
	PassportBaseURL                string
	PassportIntrospectPath         string
	PassportAdminKey               string
	PassportTimeout                time.Duration
	PassportCacheTTL               time.Duration
	PassportCacheMaxSize           int
	PassportCircuitEnabled         bool
	PassportCircuitFailureCount    int
	PassportCircuitOpenTimeout     time.Duration
	PassportCircuitHalfOpenMaxReq  int
	UptraceEnabled                 bool
	UptraceDSN                     string
	UptraceLogsEnabled             bool
	UptraceCaptureRequestBody      bool
	UptraceRequestBodyMaxBytes     int
	BetterStackEnabled             bool
	BetterStackEndpoint            string
	BetterStackToken               string
	BetterStackTimeout             time.Duration
	BetterStackMinLevel            logging.Level
	PyroscopeEnabled               bool
	PyroscopeServerAddress         string
	PyroscopeAppName               string
	PyroscopeAuthToken             string
	PyroscopeBasicAuthUser         string
	PyroscopeBasicAuthPassword     string
	PyroscopeUploadRate            time.Duration
	RosterHubEnabled               bool
	RosterHubBaseURL               string
	RosterHubToken                 string
	RosterHubTimeout               time.Duration
	RosterHubMaxRetries            int
	RosterHubCircuitEnabled        bool
	RosterHubCircuitFailureCount   int
	RosterHubCircuitOpenTimeout    time.Duration
	RosterHubCircuitHalfOpenMaxReq int
	InternalJobToken               string
	LogLevel                       logging.Level
}

func Load() (Config, error) {
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
	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}
	uptraceCaptureRequestBody, err := strconv.ParseBool(getEnv("UPTRACE_CAPTURE_REQUEST_BODY", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_CAPTURE_REQUEST_BODY: %w", err)
	}
	uptraceRequestBodyMaxBytes, err := getEnvAsInt("UPTRACE_REQUEST_BODY_MAX_BYTES", 8192)
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_REQUEST_BODY_MAX_BYTES: %w", err)
	}
	if uptraceRequestBodyMaxBytes <= 0 {
		return Config{}, fmt.Errorf("UPTRACE_REQUEST_BODY_MAX_BYTES must be > 0")
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackEndpoint := strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if betterStackEnabled && betterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := time.ParseDuration(getEnv("BETTERSTACK_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_TIMEOUT: %w", err)
	}
	if betterStackTimeout <= 0 {
		return Config{}, fmt.Errorf("BETTERSTACK_TIMEOUT must be > 0")
	}
	betterStackMinLevel := parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error"))

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	rosterHubEnabled, err := strconv.ParseBool(getEnv("ROSTERHUB_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERHUB_ENABLED: %w", err)
	}
	rosterHubTimeout, err := time.ParseDuration(getEnv("ROSTERHUB_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERHUB_TIMEOUT: %w", err)
	}
	if rosterHubTimeout <= 0 {
		return Config{}, fmt.Errorf("ROSTERHUB_TIMEOUT must be > 0")
	}
	rosterHubMaxRetries, err := getEnvAsInt("ROSTERHUB_MAX_RETRIES", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERHUB_MAX_RETRIES: %w", err)
	}
	if rosterHubMaxRetries < 0 {
		return Config{}, fmt.Errorf("ROSTERHUB_MAX_RETRIES must be >= 0")
	}
	rosterHubCircuitEnabled, err := strconv.ParseBool(getEnv("ROSTERHUB_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERHUB_CIRCUIT_ENABLED: %w", err)
	}
	rosterHubCircuitFailureCount, err := getEnvAsInt("ROSTERHUB_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERHUB_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if rosterHubCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("ROSTERHUB_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	rosterHubCircuitOpenTimeout, err := time.ParseDuration(getEnv("ROSTERHUB_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERHUB_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if rosterHubCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("ROSTERHUB_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	rosterHubCircuitHalfOpenMaxReq, err := getEnvAsInt("ROSTERHUB_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse ROSTERHUB_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if rosterHubCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("ROSTERHUB_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}
	rosterHubBaseURL := strings.TrimSpace(getEnv("ROSTERHUB_BASE_URL", "http://localhost:8080"))
	rosterHubToken := strings.TrimSpace(getEnv("ROSTERHUB_TOKEN", ""))
	if rosterHubEnabled && rosterHubToken == "" {
		return Config{}, fmt.Errorf("ROSTERHUB_TOKEN is required when ROSTERHUB_ENABLED=true")
	}

	cfg := Config{
		AppEnv:                         appEnv,
		ServiceName:                    getEnv("APP_SERVICE_NAME", "clubdesk-api"),
		ServiceVersion:                 getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                       getEnv("APP_HTTP_ADDR", ":8080"),
		DBURL:                          getEnv("DB_URL", ""),
		CORSAllowedOrigins:             splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		PprofEnabled:                   pprofEnabled,
		PprofAddr:                      pprofAddr,
		PassportBaseURL:                getEnv("PASSPORT_BASE_URL", "http://localhost:8081"),
		PassportIntrospectPath:         getEnv("PASSPORT_INTROSPECT_PATH", "/v1/auth/introspect"),
		PassportAdminKey:               getEnv("PASSPORT_ADMIN_KEY", ""),
		UptraceEnabled:                 uptraceEnabled,
		UptraceDSN:                     uptraceDSN,
		UptraceLogsEnabled:             uptraceLogsEnabled,
		UptraceCaptureRequestBody:      uptraceCaptureRequestBody,
		UptraceRequestBodyMaxBytes:     uptraceRequestBodyMaxBytes,
		BetterStackEnabled:             betterStackEnabled,
		BetterStackEndpoint:            betterStackEndpoint,
		BetterStackToken:               strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),
		BetterStackTimeout:             betterStackTimeout,
		BetterStackMinLevel:            betterStackMinLevel,
		PyroscopeEnabled:               pyroscopeEnabled,
		PyroscopeServerAddress:         pyroscopeServerAddress,
		PyroscopeAuthToken:             strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:         strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:            pyroscopeUploadRate,
		RosterHubEnabled:               rosterHubEnabled,
		RosterHubBaseURL:               rosterHubBaseURL,
		RosterHubToken:                 rosterHubToken,
		RosterHubTimeout:               rosterHubTimeout,
		RosterHubMaxRetries:            rosterHubMaxRetries,
		RosterHubCircuitEnabled:        rosterHubCircuitEnabled,
		RosterHubCircuitFailureCount:   rosterHubCircuitFailureCount,
		RosterHubCircuitOpenTimeout:    rosterHubCircuitOpenTimeout,
		RosterHubCircuitHalfOpenMaxReq: rosterHubCircuitHalfOpenMaxReq,
		InternalJobToken:               strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.AppEnv == EnvProd && cfg.InternalJobToken == "" {
		return Config{}, fmt.Errorf("INTERNAL_JOB_TOKEN is required when APP_ENV=prod")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}
	cfg.DBDisablePreparedBinary = dbDisablePreparedBinary

	cacheEnabled, err := strconv.ParseBool(getEnv("CACHE_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_ENABLED: %w", err)
	}
	cacheTTL, err := time.ParseDuration(getEnv("CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CACHE_TTL: %w", err)
	}
	if cacheTTL <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL must be > 0")
	}
	cfg.CacheEnabled = cacheEnabled
	cfg.CacheTTL = cacheTTL

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	passportTimeout, err := time.ParseDuration(getEnv("PASSPORT_TIMEOUT", "3s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PASSPORT_TIMEOUT: %w", err)
	}

	passportCacheTTL, err := time.ParseDuration(getEnv("PASSPORT_CACHE_TTL", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PASSPORT_CACHE_TTL: %w", err)
	}
	if passportCacheTTL <= 0 {
		return Config{}, fmt.Errorf("PASSPORT_CACHE_TTL must be > 0")
	}

	passportCacheMaxSize, err := getEnvAsInt("PASSPORT_CACHE_MAX_SIZE", 1024)
	if err != nil {
		return Config{}, fmt.Errorf("parse PASSPORT_CACHE_MAX_SIZE: %w", err)
	}
	if passportCacheMaxSize < 1 {
		return Config{}, fmt.Errorf("PASSPORT_CACHE_MAX_SIZE must be >= 1")
	}

	passportCircuitEnabled, err := strconv.ParseBool(getEnv("PASSPORT_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PASSPORT_CIRCUIT_ENABLED: %w", err)
	}

	passportCircuitFailureCount, err := getEnvAsInt("PASSPORT_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse PASSPORT_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if passportCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("PASSPORT_CIRCUIT_FAILURE_COUNT must be >= 1")
	}

	passportCircuitOpenTimeout, err := time.ParseDuration(getEnv("PASSPORT_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PASSPORT_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if passportCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("PASSPORT_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}

	passportCircuitHalfOpenMaxReq, err := getEnvAsInt("PASSPORT_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse PASSPORT_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if passportCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("PASSPORT_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	logLevel := parseLogLevel(getEnv("APP_LOG_LEVEL", "info"))

	cfg.ReadTimeout = readTimeout
	cfg.WriteTimeout = writeTimeout
	cfg.PassportTimeout = passportTimeout
	cfg.PassportCacheTTL = passportCacheTTL
	cfg.PassportCacheMaxSize = passportCacheMaxSize
	cfg.PassportCircuitEnabled = passportCircuitEnabled
	cfg.PassportCircuitFailureCount = passportCircuitFailureCount
	cfg.PassportCircuitOpenTimeout = passportCircuitOpenTimeout
	cfg.PassportCircuitHalfOpenMaxReq = passportCircuitHalfOpenMaxReq
	cfg.LogLevel = logLevel

	return cfg, nil
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
