package nohost

import (
	"github.com/dmitrymomot/nohost/core/server"
	mongodb "github.com/dmitrymomot/nohost/integration/database/mongo"
	redisdb "github.com/dmitrymomot/nohost/integration/database/redis"
	"github.com/dmitrymomot/nohost/integration/storage/s3"
)

// Storage backend kinds accepted by Config.Storage.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
	StorageRedis = "redis"
	StorageMongo = "mongo"
)

// Config is the complete runtime configuration, loaded from the environment.
type Config struct {
	Server server.Config
	S3     s3.Config
	Redis  redisdb.Config
	Mongo  mongodb.Config

	AppName     string   `env:"NOHOST_APP_NAME" envDefault:"nohost"`
	Env         string   `env:"NOHOST_ENV" envDefault:"development"`
	LogLevel    string   `env:"NOHOST_LOG_LEVEL"`  // Empty keeps the level of the Env preset
	LogFormat   string   `env:"NOHOST_LOG_FORMAT"` // json or text; empty keeps the format of the Env preset
	Storage     string   `env:"NOHOST_STORAGE" envDefault:"local"`
	Root        string   `env:"NOHOST_ROOT" envDefault:"."`
	RedisPrefix string   `env:"NOHOST_REDIS_PREFIX"`
	MongoPrefix string   `env:"NOHOST_MONGO_PREFIX"`
	Concurrency int      `env:"NOHOST_INLINE_CONCURRENCY" envDefault:"4"`
	Hidden      []string `env:"NOHOST_HIDDEN" envSeparator:","`
}
