package filestorages

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (FileStorage, string) {
	t.Helper()
	storage, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return storage, storage.(*fileStorage).dir
}

func readAll(t *testing.T, storage FileStorage, key string) string {
	t.Helper()
	rc, err := storage.Get(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestNewFileStorage_EmptyRootDir(t *testing.T) {
	t.Parallel()

	_, err := NewFileStorage("")
	assert.ErrorIs(t, err, ErrInvalidRootDir)
}

func TestFileStorage_KeyValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		wantErr error
	}{
		{"scopes/visitor-1/pubx:pmac", nil},
		{"scopes/visitor-1/pubx:extraData", nil},
		{"batches/01J0SESSION/batch-1.json", nil},
		{"flat.json", nil},
		{"", ErrInvalidKey},
		{".", ErrInvalidKey},
		{"../outside.json", ErrInvalidKey},
		{"scopes/../../outside.json", ErrInvalidKey},
		{"/etc/passwd", ErrInvalidKey},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			storage, _ := newTestStorage(t)
			ctx := context.Background()

			result, err := storage.Put(ctx, tt.key, strings.NewReader(`{"v":1}`), PutOptions{})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				_, getErr := storage.Get(ctx, tt.key)
				assert.ErrorIs(t, getErr, tt.wantErr)
				assert.ErrorIs(t, storage.Delete(ctx, tt.key), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, result.FileKey)
			assert.Equal(t, `{"v":1}`, readAll(t, storage, tt.key))
		})
	}
}

func TestFileStorage_PutOverwrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		allowOverwrite bool
		wantErr        error
		wantContent    string
	}{
		// receipts are written once
		{"publish if absent", false, ErrFileAlreadyExists, `{"floor":1}`},
		// storage blobs are replaced
		{"atomic replace", true, nil, `{"floor":2}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			storage, dir := newTestStorage(t)
			ctx := context.Background()
			key := "scopes/visitor-1/pubx:pmac"

			_, err := storage.Put(ctx, key, strings.NewReader(`{"floor":1}`), PutOptions{})
			require.NoError(t, err)

			_, err = storage.Put(ctx, key, strings.NewReader(`{"floor":2}`), PutOptions{AllowOverwrite: tt.allowOverwrite})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantContent, readAll(t, storage, key))

			entries, err := os.ReadDir(filepath.Join(dir, "scopes", "visitor-1"))
			require.NoError(t, err)
			require.Len(t, entries, 1, "temp files must not survive a put")
			assert.Equal(t, "pubx:pmac", entries[0].Name())
		})
	}
}

func TestFileStorage_LargeBlob(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)
	blob := `"` + strings.Repeat("x", 256*1024) + `"`

	_, err := storage.Put(context.Background(), "scopes/v/pubx:extraData", strings.NewReader(blob), PutOptions{AllowOverwrite: true})

	require.NoError(t, err)
	assert.Equal(t, blob, readAll(t, storage, "scopes/v/pubx:extraData"))
}

func TestFileStorage_GetMissing(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)

	rc, err := storage.Get(context.Background(), "scopes/visitor-1/pubx:pmac")

	assert.Nil(t, rc)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileStorage_Delete(t *testing.T) {
	t.Parallel()

	storage, _ := newTestStorage(t)
	ctx := context.Background()
	key := "scopes/visitor-1/pubx:extraData"

	_, err := storage.Put(ctx, key, strings.NewReader(`{}`), PutOptions{AllowOverwrite: true})
	require.NoError(t, err)

	require.NoError(t, storage.Delete(ctx, key))
	_, err = storage.Get(ctx, key)
	assert.ErrorIs(t, err, ErrFileNotFound)

	assert.ErrorIs(t, storage.Delete(ctx, key), ErrFileNotFound)
}
