package redis

import "time"

// Config holds Redis connection settings.
type Config struct {
	ConnectionURL  string        `env:"NOHOST_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"NOHOST_REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"NOHOST_REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"NOHOST_REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
	ScanBatchSize  int           `env:"NOHOST_REDIS_SCAN_BATCH_SIZE" envDefault:"1000"`
}
