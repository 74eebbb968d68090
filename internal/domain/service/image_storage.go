package service

import (
	"context"
	"io"
)

// UploadInput describes a file handed to ImageStorage.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
}

// UploadResult locates a stored file.
type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ImageStorage stores catalog images and returns their public URL.
type ImageStorage interface {
	Put(ctx context.Context, r io.Reader, in UploadInput) (*UploadResult, error)
	Delete(ctx context.Context, key string) error
}
