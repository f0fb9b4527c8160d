// Package s3 serves an Amazon S3 or S3-compatible bucket as read-only
// storage.Storage.
//
// Paths map to object keys under an optional prefix. Directories are not
// stored; they are implied by keys that share a "/" separated prefix, and
// List uses the "/" delimiter to return only immediate children.
//
//	store, err := s3.New(ctx, s3.Config{
//		Bucket: "my-site",
//		Region: "eu-central-1",
//		Prefix: "public",
//	})
//	if err != nil {
//		return err
//	}
//	data, err := store.ReadFile(ctx, "/index.html") // key "public/index.html"
//
// For MinIO and similar services set Endpoint and ForcePathStyle. Credentials
// fall back to the default AWS chain (environment, shared config, IAM role)
// when AccessKeyID and SecretKey are empty.
//
// S3 errors are translated into storage sentinels such as
// storage.ErrFileNotFound and storage.ErrAccessDenied.
package s3
