// Package mongo opens MongoDB clients with connection verification.
//
// Connect applies the pool and timeout settings from Config, connects with
// the official v2 driver and pings the primary with retries, which covers
// cold starts of hosted clusters:
//
//	client, err := mongo.Connect(ctx, mongo.Config{
//		ConnectionURL: "mongodb://localhost:27017",
//		RetryAttempts: 3,
//		RetryInterval: time.Second,
//	})
//	if err != nil {
//		return err
//	}
//	defer client.Disconnect(ctx)
//
// Settings are read from NOHOST_MONGO_* variables; Database and Bucket name
// the GridFS bucket served by the mongo storage backend.
//
// Errors wrap the sentinels ErrEmptyConnectionURL, ErrFailedToConnectToMongo
// and ErrHealthcheckFailed.
package mongo
