package storage

import "errors"

var (
	ErrFileNotFound       = errors.New("file not found")
	ErrDirectoryNotFound  = errors.New("directory not found")
	ErrNotDirectory       = errors.New("not a directory")
	ErrIsDirectory        = errors.New("is a directory")
	ErrInvalidPath        = errors.New("invalid path")
	ErrInvalidConfig      = errors.New("invalid storage configuration")
	ErrAccessDenied       = errors.New("access denied")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrOperationTimeout   = errors.New("storage operation timed out")
	ErrOperationCanceled  = errors.New("storage operation canceled")
	ErrRequestTimeout     = errors.New("storage request timeout")
	ErrServiceUnavailable = errors.New("storage service unavailable")
	ErrInvalidObjectState = errors.New("invalid object state")
	ErrPaginatorNil       = errors.New("list paginator is nil")
)
