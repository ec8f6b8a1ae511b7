package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// PutInput describes an uploaded file
type PutInput struct {
	Filename    string
	ContentType string
	Size        int64
}

// PutResult is where a stored file ended up
type PutResult struct {
	Key string
	URL string
}

// Storage stores gallery images and returns their public URL
type Storage interface {
	Put(ctx context.Context, r io.Reader, in PutInput) (PutResult, error)
	Delete(ctx context.Context, key string) error
}

// AllowedImageTypes maps accepted content types to file extensions
var AllowedImageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// safeExt picks the extension from the filename when it is a known image
// type, falling back to the content type.
func safeExt(filename, contentType string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".gif":
		return ext
	}
	return AllowedImageTypes[contentType]
}
