package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_PutAndDelete(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket, "/media/")

	url, err := store.Put(ctx, "avatars/avatar_user_1_abc.jpg", []byte("jpeg-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "/media/avatars/avatar_user_1_abc.jpg", url)

	attrs, err := bucket.Attributes(ctx, "avatars/avatar_user_1_abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)

	data, err := bucket.ReadAll(ctx, "avatars/avatar_user_1_abc.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)

	require.NoError(t, store.Delete(ctx, "avatars/avatar_user_1_abc.jpg"))

	exists, err := bucket.Exists(ctx, "avatars/avatar_user_1_abc.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobStorage_DeleteMissingIsNoop(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	store := NewWithBucket(bucket, "/media")
	assert.NoError(t, store.Delete(context.Background(), "portfolio/user_1/missing.jpg"))
}
