package storage

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/hivebackit/hivebackit-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(bucket string) *config.Config {
	return &config.Config{Storage: config.Storage{
		Endpoint:        "http://localhost:9000",
		Region:          "us-east-1",
		Bucket:          bucket,
		AccessKeyID:     "test-access-key",
		SecretAccessKey: "test-secret-key",
		PublicURL:       "https://files.hive.example/",
		PresignExpiry:   10 * time.Minute,
	}}
}

func TestPresignUpload(t *testing.T) {
	presigner, err := NewPresigner(testConfig("hive-files"))
	require.NoError(t, err)

	before := time.Now().UTC()
	upload, err := presigner.PresignUpload(context.Background(), "/courses/abc/lecture-01.pdf", "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, "PUT", upload.Method)
	assert.Equal(t, "courses/abc/lecture-01.pdf", upload.Key)
	assert.Equal(t, "https://files.hive.example/courses/abc/lecture-01.pdf", upload.PublicURL)
	assert.Equal(t, "application/pdf", upload.Headers["Content-Type"])
	assert.WithinDuration(t, before.Add(10*time.Minute), upload.ExpiresAt, time.Minute)

	signed, err := url.Parse(upload.URL)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", signed.Host)
	assert.Equal(t, "/hive-files/courses/abc/lecture-01.pdf", signed.Path)
	assert.Equal(t, "600", signed.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, signed.Query().Get("X-Amz-Signature"))
}

func TestPresignUploadRejectsTraversal(t *testing.T) {
	presigner, err := NewPresigner(testConfig("hive-files"))
	require.NoError(t, err)

	for _, key := range []string{"", "/", "notes/../secrets.txt", "./notes.pdf"} {
		_, err := presigner.PresignUpload(context.Background(), key, "")
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}
}

func TestPresignerWithoutBucket(t *testing.T) {
	presigner, err := NewPresigner(testConfig(""))
	require.NoError(t, err)

	_, err = presigner.PresignUpload(context.Background(), "notes/a.pdf", "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
