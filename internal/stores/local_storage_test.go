package stores

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"auction-analytics/internal/shared/filestorages"
	"auction-analytics/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type errorReader struct {
	err error
}

func (r *errorReader) Read(p []byte) (int, error) {
	return 0, r.err
}

func TestLocalStorage_Read_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	storage := NewLocalStorage(mockFileStorage)

	ctx := context.Background()
	blob := []byte(`{"auction_1":{"floor":0.23,"maxBid":0.34,"bidCount":3}}`)
	mockFileStorage.EXPECT().
		Get(ctx, "scopes/visitor-1/pubx:pmac").
		Return(io.NopCloser(bytes.NewReader(blob)), nil)

	data, err := storage.Read(ctx, "visitor-1", KeyPmac)
	require.NoError(t, err)
	assert.JSONEq(t, string(blob), string(data))
}

func TestLocalStorage_Read_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	storage := NewLocalStorage(mockFileStorage)

	ctx := context.Background()
	mockFileStorage.EXPECT().
		Get(ctx, "scopes/visitor-1/pubx:extraData").
		Return(nil, filestorages.ErrFileNotFound)

	data, err := storage.Read(ctx, "visitor-1", KeyExtraData)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestLocalStorage_Read_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(m *mocks.MockFileStorage)
		contains string
	}{
		{
			name: "storage error",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			contains: "failed to get blob",
		},
		{
			name: "read error",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(io.NopCloser(&errorReader{err: errors.New("read error")}), nil)
			},
			contains: "failed to read blob",
		},
		{
			name: "too large",
			setup: func(m *mocks.MockFileStorage) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).
					Return(io.NopCloser(strings.NewReader(strings.Repeat("1", maxBlobBytes+1))), nil)
			},
			contains: ErrBlobTooLarge.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			tt.setup(mockFileStorage)

			data, err := NewLocalStorage(mockFileStorage).Read(context.Background(), "visitor-1", KeyPmac)
			assert.Nil(t, data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestLocalStorage_Write(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	storage := NewLocalStorage(mockFileStorage)

	ctx := context.Background()
	blob := []byte(`{"segment":"sports"}`)
	mockFileStorage.EXPECT().
		Put(ctx, "scopes/visitor-1/pubx:extraData", gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, blob, data)
			return &filestorages.PutResult{FileKey: key}, nil
		})

	assert.NoError(t, storage.Write(ctx, "visitor-1", KeyExtraData, blob))
}

func TestLocalStorage_Write_Rejects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := NewLocalStorage(mocks.NewMockFileStorage(ctrl))
	ctx := context.Background()

	assert.ErrorIs(t, storage.Write(ctx, "visitor-1", KeyPmac, []byte(`{"broken":`)), ErrInvalidBlob)
	assert.ErrorIs(t, storage.Write(ctx, "visitor-1", KeyPmac, bytes.Repeat([]byte("1"), maxBlobBytes+1)), ErrBlobTooLarge)
	assert.ErrorIs(t, storage.Write(ctx, "", KeyPmac, []byte(`{}`)), ErrInvalidScope)
	assert.ErrorIs(t, storage.Write(ctx, "a/b", KeyPmac, []byte(`{}`)), ErrInvalidScope)
	assert.ErrorIs(t, storage.Write(ctx, "visitor-1", "../escape", []byte(`{}`)), ErrInvalidBlobKey)
}

func TestLocalStorage_Remove(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	storage := NewLocalStorage(mockFileStorage)
	ctx := context.Background()

	gomock.InOrder(
		mockFileStorage.EXPECT().Delete(ctx, "scopes/visitor-1/pubx:pmac").Return(nil),
		mockFileStorage.EXPECT().Delete(ctx, "scopes/visitor-1/pubx:pmac").Return(filestorages.ErrFileNotFound),
		mockFileStorage.EXPECT().Delete(ctx, "scopes/visitor-1/pubx:pmac").Return(errors.New("disk error")),
	)

	assert.NoError(t, storage.Remove(ctx, "visitor-1", KeyPmac))
	assert.NoError(t, storage.Remove(ctx, "visitor-1", KeyPmac))
	assert.ErrorContains(t, storage.Remove(ctx, "visitor-1", KeyPmac), "failed to delete blob")
}

func TestLocalStorage_RoundTrip(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	storage := NewLocalStorage(fileStorage)
	ctx := context.Background()

	require.NoError(t, storage.Write(ctx, "visitor-1", KeyPmac, []byte(`{"a":1}`)))
	require.NoError(t, storage.Write(ctx, "visitor-1", KeyPmac, []byte(`{"a":2}`)))

	data, err := storage.Read(ctx, "visitor-1", KeyPmac)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(data))

	other, err := storage.Read(ctx, "visitor-2", KeyPmac)
	require.NoError(t, err)
	assert.Nil(t, other)

	require.NoError(t, storage.Remove(ctx, "visitor-1", KeyPmac))
	data, err = storage.Read(ctx, "visitor-1", KeyPmac)
	require.NoError(t, err)
	assert.Nil(t, data)
}
