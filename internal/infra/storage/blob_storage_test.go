package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T, publicBaseURL string) *blobStorage {
	t.Helper()

	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { bucket.Close() })

	return &blobStorage{bucket: bucket, publicBaseURL: publicBaseURL}
}

func TestBlobStorage_UploadReturnsPublicURL(t *testing.T) {
	s := newMemStorage(t, "https://cdn.example.com/assets")

	url, err := s.Upload(context.Background(), "stores/abc/logo.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/assets/stores/abc/logo.png", url)

	data, err := s.bucket.ReadAll(context.Background(), "stores/abc/logo.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestBlobStorage_PublicURLWithoutBase(t *testing.T) {
	s := newMemStorage(t, "")

	assert.Equal(t, "/deals/xyz/product.jpg", s.PublicURL("deals/xyz/product.jpg"))
}

func TestBlobStorage_Delete(t *testing.T) {
	s := newMemStorage(t, "")
	ctx := context.Background()

	_, err := s.Upload(ctx, "k", []byte("v"), "text/plain")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "k"))

	_, err = s.bucket.ReadAll(ctx, "k")
	assert.Error(t, err)
}
