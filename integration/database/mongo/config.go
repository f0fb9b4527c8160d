package mongo

import "time"

// Config holds MongoDB connection settings.
type Config struct {
	ConnectionURL   string        `env:"NOHOST_MONGO_URL"`
	Database        string        `env:"NOHOST_MONGO_DATABASE" envDefault:"nohost"`
	Bucket          string        `env:"NOHOST_MONGO_BUCKET" envDefault:"fs"`
	ConnectTimeout  time.Duration `env:"NOHOST_MONGO_CONNECT_TIMEOUT" envDefault:"10s"`
	MaxPoolSize     uint64        `env:"NOHOST_MONGO_MAX_POOL_SIZE" envDefault:"100"`
	MinPoolSize     uint64        `env:"NOHOST_MONGO_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"NOHOST_MONGO_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryReads      bool          `env:"NOHOST_MONGO_RETRY_READS" envDefault:"true"`
	RetryAttempts   int           `env:"NOHOST_MONGO_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval   time.Duration `env:"NOHOST_MONGO_RETRY_INTERVAL" envDefault:"5s"`
}
