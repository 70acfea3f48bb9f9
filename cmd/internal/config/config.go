package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const (
	envVarsPrefix = "/codcoz/prod/"
	ssmRegion     = "us-east-2"
)

type Config struct {
	DocStoreURL string
	RelStoreURL string

	HTTPPort     int
	LogLevel     log.Lvl
	DatabasePath string

	LedgerRetention time.Duration
	UpstreamTimeout time.Duration

	S3Region string
	S3Bucket string
}

// ImagesEnabled reports whether recipe images can be uploaded.
func (c *Config) ImagesEnabled() bool {
	return c.S3Bucket != ""
}

func (c *Config) Address() string {
	return ":" + strconv.Itoa(c.HTTPPort)
}

// NewFromEnv builds the configuration from environment variables.
func NewFromEnv() (*Config, error) {
	docStoreURL := strings.TrimSpace(os.Getenv("DOCSTORE_API_URL"))
	if docStoreURL == "" {
		return nil, fmt.Errorf("DOCSTORE_API_URL environment variable not set")
	}

	port, err := intFromEnv("HTTP_PORT", 7070)
	if err != nil {
		return nil, err
	}

	level, err := ParseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	retentionDays, err := intFromEnv("LEDGER_RETENTION_DAYS", 180)
	if err != nil {
		return nil, err
	}

	timeoutSeconds, err := intFromEnv("UPSTREAM_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./codcoz.db"
	}

	return &Config{
		DocStoreURL:     docStoreURL,
		RelStoreURL:     strings.TrimSpace(os.Getenv("RELSTORE_API_URL")),
		HTTPPort:        port,
		LogLevel:        level,
		DatabasePath:    dbPath,
		LedgerRetention: time.Duration(retentionDays) * 24 * time.Hour,
		UpstreamTimeout: time.Duration(timeoutSeconds) * time.Second,
		S3Region:        os.Getenv("AWS_S3_REGION"),
		S3Bucket:        os.Getenv("S3_BUCKET_NAME"),
	}, nil
}

// ParseLogLevel maps debug, info, warn and error to gommon levels.
// An empty value means info.
func ParseLogLevel(s string) (log.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG, nil
	case "", "info":
		return log.INFO, nil
	case "warn", "warning":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	default:
		return 0, fmt.Errorf("LOG_LEVEL has an invalid value: %q", s)
	}
}

func intFromEnv(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, raw)
	}
	return v, nil
}

// LoadEnv exports the process environment. In production every parameter
// under the SSM prefix becomes an environment variable; anywhere else the
// local .env file is read if present.
func LoadEnv(ctx context.Context) error {
	if os.Getenv("GO_ENV") == "production" {
		return loadProdEnv(ctx)
	}

	if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}
	return nil
}

func loadProdEnv(ctx context.Context) error {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(ssmRegion))
	if err != nil {
		return fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	count := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("unable to load prod environment: %w", err)
		}

		for _, param := range out.Parameters {
			key := strings.TrimPrefix(aws.ToString(param.Name), envVarsPrefix)
			if err := os.Setenv(key, aws.ToString(param.Value)); err != nil {
				return fmt.Errorf("unable to set environment variable: %w", err)
			}
			count++
		}
	}

	log.Debugf("loaded %d prod environment variables", count)
	return nil
}
