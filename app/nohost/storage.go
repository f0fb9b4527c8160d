package nohost

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/nohost/core/storage"
	mongodb "github.com/dmitrymomot/nohost/integration/database/mongo"
	redisdb "github.com/dmitrymomot/nohost/integration/database/redis"
	"github.com/dmitrymomot/nohost/integration/storage/mongo"
	"github.com/dmitrymomot/nohost/integration/storage/redis"
	"github.com/dmitrymomot/nohost/integration/storage/s3"
)

// OpenStorage builds the backend named by cfg.Storage. The returned close
// function releases backend connections and is never nil.
func OpenStorage(ctx context.Context, cfg Config) (storage.Storage, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage {
	case "", StorageLocal:
		store, err := storage.NewLocal(cfg.Root)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case StorageS3:
		store, err := s3.New(ctx, cfg.S3)
		if err != nil {
			return nil, noop, err
		}
		return store, noop, nil

	case StorageRedis:
		client, err := redisdb.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, noop, err
		}
		store, err := redis.New(client,
			redis.WithPrefix(cfg.RedisPrefix),
			redis.WithScanCount(cfg.Redis.ScanBatchSize),
		)
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return store, client.Close, nil

	case StorageMongo:
		client, err := mongodb.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, noop, err
		}
		disconnect := func() error { return client.Disconnect(context.WithoutCancel(ctx)) }
		bucket := mongo.NewBucket(client.Database(cfg.Mongo.Database), cfg.Mongo.Bucket)
		store, err := mongo.New(bucket, mongo.WithPrefix(cfg.MongoPrefix))
		if err != nil {
			_ = disconnect()
			return nil, noop, err
		}
		return store, disconnect, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown storage %q", storage.ErrInvalidConfig, cfg.Storage)
	}
}
