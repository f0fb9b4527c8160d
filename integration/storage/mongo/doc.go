// Package mongo serves files stored in a MongoDB GridFS bucket as read-only
// storage.Storage.
//
// File names under the configured prefix map to paths:
//
//	mongofiles --db nohost put site/index.html
//	mongofiles --db nohost put site/css/site.css
//
//	client, err := dbmongo.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	bucket := mongo.NewBucket(client.Database("nohost"), "fs")
//	store, err := mongo.New(bucket, mongo.WithPrefix("site/"))
//
// Directories are implied by "/" in file names and discovered with a
// prefix query on the files collection. When a name has several revisions
// the newest upload wins, matching what GridFS downloads by name.
package mongo
