// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the runtime configuration of the order service. Table names
// are resolved by the repositories themselves so local overrides stay close
// to the code that uses them.
type Config struct {
	RunAddress string `env:"RUN_ADDRESS" envDefault:":8080"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`

	DispatchQueueSize  int           `env:"DISPATCH_QUEUE_SIZE" envDefault:"64"`
	DispatchWorkers    int           `env:"DISPATCH_WORKERS" envDefault:"4"`
	DispatchMaxRetries uint64        `env:"DISPATCH_MAX_RETRIES" envDefault:"2"`
	DispatchRetryDelay time.Duration `env:"DISPATCH_RETRY_DELAY" envDefault:"10s"`
}

// Parse reads the configuration from environment variables.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
