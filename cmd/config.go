package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"nailorders/internal/adapters/out/postgres"
	"nailorders/internal/adapters/out/s3storage"
	"nailorders/internal/jobs"
	"nailorders/internal/pkg/errs"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort          = "8080"
	defaultDBPort            = "5432"
	defaultDBSSLMode         = "disable"
	defaultS3Region          = "auto"
	defaultUploadConcurrency = 4
	defaultMaxUploadBytes    = 10 << 20
	defaultTimezone          = "UTC"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	S3Endpoint        string
	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3PublicURL       string

	UploadConcurrency   int
	MaxUploadBytes      int64
	CacheWarmupSchedule string
	Location            *time.Location
	LogLevel            slog.Level
}

// LoadConfig reads the configuration from the environment. Variables from
// envFile are loaded first when the file exists; variables already set in the
// process environment win. Every missing or malformed key is reported.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return loadConfig(os.Getenv)
}

func loadConfig(getenv func(string) string) (Config, error) {
	r := envReader{getenv: getenv}

	cfg := Config{
		HTTPPort: r.optional("HTTP_PORT", defaultHTTPPort),

		DBHost:     r.required("DB_HOST"),
		DBPort:     r.optional("DB_PORT", defaultDBPort),
		DBUser:     r.required("DB_USER"),
		DBPassword: r.required("DB_PASSWORD"),
		DBName:     r.required("DB_NAME"),
		DBSslMode:  r.optional("DB_SSLMODE", defaultDBSSLMode),

		S3Endpoint:        r.required("S3_ENDPOINT"),
		S3Region:          r.optional("S3_REGION", defaultS3Region),
		S3Bucket:          r.required("S3_BUCKET"),
		S3AccessKeyID:     r.required("S3_ACCESS_KEY_ID"),
		S3SecretAccessKey: r.required("S3_SECRET_ACCESS_KEY"),
		S3PublicURL:       r.required("S3_PUBLIC_URL"),

		UploadConcurrency:   r.positiveInt("UPLOAD_CONCURRENCY", defaultUploadConcurrency),
		MaxUploadBytes:      int64(r.positiveInt("MAX_UPLOAD_BYTES", defaultMaxUploadBytes)),
		CacheWarmupSchedule: r.optional("CACHE_WARMUP_SCHEDULE", jobs.DefaultWarmupSchedule),
		Location:            r.location("TIMEZONE", defaultTimezone),
		LogLevel:            r.logLevel("LOG_LEVEL", slog.LevelInfo),
	}

	if err := errors.Join(r.errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Postgres() postgres.Config {
	return postgres.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
		SSLMode:  c.DBSslMode,
	}
}

func (c Config) S3() s3storage.Config {
	return s3storage.Config{
		Endpoint:        c.S3Endpoint,
		Region:          c.S3Region,
		Bucket:          c.S3Bucket,
		AccessKeyID:     c.S3AccessKeyID,
		SecretAccessKey: c.S3SecretAccessKey,
	}
}

type envReader struct {
	getenv func(string) string
	errs   []error
}

func (r *envReader) required(key string) string {
	v := r.getenv(key)
	if v == "" {
		r.errs = append(r.errs, errs.NewValueIsRequiredError(key))
	}
	return v
}

func (r *envReader) optional(key, def string) string {
	if v := r.getenv(key); v != "" {
		return v
	}
	return def
}

func (r *envReader) positiveInt(key string, def int) int {
	v := r.getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	if n <= 0 {
		r.errs = append(r.errs, errs.NewValueIsOutOfRangeError(key, n, 1, "max int"))
		return def
	}
	return n
}

func (r *envReader) location(key, def string) *time.Location {
	loc, err := time.LoadLocation(r.optional(key, def))
	if err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return time.UTC
	}
	return loc
}

func (r *envReader) logLevel(key string, def slog.Level) slog.Level {
	v := r.getenv(key)
	if v == "" {
		return def
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		r.errs = append(r.errs, errs.NewValueIsInvalidErrorWithCause(key, err))
		return def
	}
	return lvl
}
