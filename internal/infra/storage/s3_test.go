package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/agenda-api/internal/config"
)

func TestS3StoreURL(t *testing.T) {
	withPublic := NewS3Store(config.S3Config{
		Region:    "us-east-1",
		Bucket:    "agenda",
		PublicURL: "https://cdn.example.com/",
	})
	assert.Equal(t, "https://cdn.example.com/clients/1.webp", withPublic.URL("clients/1.webp"))

	withEndpoint := NewS3Store(config.S3Config{
		Endpoint: "http://localhost:9000",
		Region:   "us-east-1",
		Bucket:   "agenda",
	})
	assert.Equal(t, "http://localhost:9000/agenda/clients/1.webp", withEndpoint.URL("clients/1.webp"))

	aws := NewS3Store(config.S3Config{Region: "sa-east-1", Bucket: "agenda"})
	assert.Equal(t, "https://agenda.s3.sa-east-1.amazonaws.com/k", aws.URL("k"))
}

func TestDisabled(t *testing.T) {
	var d Disabled
	assert.ErrorIs(t, d.Put(context.Background(), "k", "image/webp", []byte("x")), ErrDisabled)
	assert.NoError(t, d.Delete(context.Background(), "k"))
}

func TestMemory(t *testing.T) {
	m := NewMemory("http://files")
	ctx := context.Background()

	assert.NoError(t, m.Put(ctx, "a", "image/webp", []byte("1")))
	assert.NoError(t, m.Put(ctx, "a", "image/webp", []byte("2")))
	got, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []byte("2"), got)
	assert.Equal(t, 1, m.Len())

	assert.NoError(t, m.Delete(ctx, "a"))
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "http://files/a", m.URL("a"))
}
