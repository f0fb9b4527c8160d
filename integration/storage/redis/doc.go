// Package redis serves string keys from Redis as read-only storage.Storage.
//
// Each key under the configured prefix holds one file's content:
//
//	SET site:index.html "<h1>hello</h1>"
//	SET site:css/site.css "body{margin:0}"
//
//	client, err := dbredis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	store, err := redis.New(client, redis.WithPrefix("site:"))
//
// Directories are implied by "/" in key names and discovered with SCAN.
// Redis stores no timestamps, so entries carry a zero ModTime.
package redis
