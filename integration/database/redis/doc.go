// Package redis opens go-redis clients with connection verification.
//
// Connect validates the redis:// or rediss:// URL, creates the client and
// pings it with retries before returning. Healthcheck wraps a ping for
// readiness probes.
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL:  "redis://localhost:6379/0",
//		RetryAttempts:  3,
//		RetryInterval:  time.Second,
//		ConnectTimeout: 10 * time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
// Errors wrap the sentinels ErrEmptyConnectionURL,
// ErrFailedToParseRedisConnString, ErrRedisNotReady and ErrHealthcheckFailed.
package redis
