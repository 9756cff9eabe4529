package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"auction-analytics/internal/shared/filestorages"
)

// Keys read into every new auction record.
const (
	KeyPmac      = "pubx:pmac"
	KeyExtraData = "pubx:extraData"
)

const maxBlobBytes = 64 * 1024

var (
	ErrInvalidBlob    = errors.New("blob is not valid json")
	ErrBlobTooLarge   = errors.New("blob too large")
	ErrInvalidScope   = errors.New("invalid storage scope")
	ErrInvalidBlobKey = errors.New("invalid storage key")
)

//go:generate mockgen -source=local_storage.go -destination=./mocks/local_storage_mock.go -package=mocks
type LocalStorage interface {
	// Read returns nil when nothing is stored under key.
	Read(ctx context.Context, scope, key string) (json.RawMessage, error)
	Write(ctx context.Context, scope, key string, blob []byte) error
	// Remove is a no-op for missing keys.
	Remove(ctx context.Context, scope, key string) error
}

type localStorage struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewLocalStorage(fileStorage filestorages.FileStorage) LocalStorage {
	return &localStorage{fileStorage: fileStorage, dir: "scopes"}
}

func (s *localStorage) Read(ctx context.Context, scope, key string) (json.RawMessage, error) {
	fileKey, err := s.getKey(scope, key)
	if err != nil {
		return nil, err
	}
	readCloser, err := s.fileStorage.Get(ctx, fileKey)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get blob: %w", err)
	}

	defer readCloser.Close()
	data, err := io.ReadAll(io.LimitReader(readCloser, maxBlobBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read blob: %w", err)
	}
	if len(data) > maxBlobBytes {
		return nil, ErrBlobTooLarge
	}
	return data, nil
}

func (s *localStorage) Write(ctx context.Context, scope, key string, blob []byte) error {
	fileKey, err := s.getKey(scope, key)
	if err != nil {
		return err
	}
	if len(blob) > maxBlobBytes {
		return ErrBlobTooLarge
	}
	if !json.Valid(blob) {
		return ErrInvalidBlob
	}
	_, err = s.fileStorage.Put(ctx, fileKey, bytes.NewReader(blob), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to put blob: %w", err)
	}
	return nil
}

func (s *localStorage) Remove(ctx context.Context, scope, key string) error {
	fileKey, err := s.getKey(scope, key)
	if err != nil {
		return err
	}
	if err := s.fileStorage.Delete(ctx, fileKey); err != nil && !errors.Is(err, filestorages.ErrFileNotFound) {
		return fmt.Errorf("failed to delete blob: %w", err)
	}
	return nil
}

func (s *localStorage) getKey(scope, key string) (string, error) {
	if !isSafeSegment(scope) {
		return "", ErrInvalidScope
	}
	if !isSafeSegment(key) {
		return "", ErrInvalidBlobKey
	}
	return fmt.Sprintf("%s/%s/%s", s.dir, scope, key), nil
}

func isSafeSegment(segment string) bool {
	return segment != "" && segment != "." && segment != ".." &&
		len(segment) <= 128 && !strings.ContainsAny(segment, `/\`)
}

// IsValidScope reports whether scope can name a storage area.
func IsValidScope(scope string) bool {
	return isSafeSegment(scope)
}
