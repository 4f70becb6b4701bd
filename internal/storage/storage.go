// Package storage hands out presigned upload URLs for the S3-compatible bucket that holds
// course files and shared notes.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/hivebackit/hivebackit-api/config"
	"github.com/rs/zerolog/log"
)

var (
	ErrNotConfigured = errors.New("object storage is not configured")
	ErrInvalidKey    = errors.New("invalid object key")
)

type PresignedUpload struct {
	Method    string
	URL       string
	Headers   map[string]string
	Key       string
	PublicURL string
	ExpiresAt time.Time
}

type Presigner interface {
	PresignUpload(ctx context.Context, key, contentType string) (*PresignedUpload, error)
}

type s3Presigner struct {
	client    *s3.PresignClient
	bucket    string
	publicURL string
	expiry    time.Duration
}

// NewPresigner returns a presigner for the configured bucket. With no bucket configured every
// call fails with ErrNotConfigured.
func NewPresigner(cfg *config.Config) (Presigner, error) {
	sc := cfg.Storage
	if sc.Bucket == "" {
		log.Warn().Msg("STORAGE_BUCKET is not set. Upload URLs will be unavailable.")
		return disabledPresigner{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(sc.Region)}
	if sc.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(sc.AccessKeyID, sc.SecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if sc.Endpoint != "" {
			o.BaseEndpoint = aws.String(sc.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Info().Str("bucket", sc.Bucket).Str("endpoint", sc.Endpoint).Msg("Object storage configured")
	return &s3Presigner{
		client:    s3.NewPresignClient(client),
		bucket:    sc.Bucket,
		publicURL: strings.TrimRight(sc.PublicURL, "/"),
		expiry:    sc.PresignExpiry,
	}, nil
}

func (p *s3Presigner) PresignUpload(ctx context.Context, key, contentType string) (*PresignedUpload, error) {
	key, err := cleanKey(key)
	if err != nil {
		return nil, err
	}

	input := &s3.PutObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	issuedAt := time.Now().UTC()
	req, err := p.client.PresignPutObject(ctx, input, s3.WithPresignExpires(p.expiry))
	if err != nil {
		return nil, fmt.Errorf("presign upload of %s: %w", key, err)
	}

	headers := make(map[string]string, len(req.SignedHeader))
	for name, values := range req.SignedHeader {
		if strings.EqualFold(name, "Host") || len(values) == 0 {
			continue
		}
		headers[http.CanonicalHeaderKey(name)] = values[0]
	}

	upload := &PresignedUpload{
		Method:    req.Method,
		URL:       req.URL,
		Headers:   headers,
		Key:       key,
		ExpiresAt: issuedAt.Add(p.expiry),
	}
	if p.publicURL != "" {
		upload.PublicURL = p.publicURL + "/" + key
	}
	return upload, nil
}

// cleanKey strips leading slashes and rejects keys that escape their prefix.
func cleanKey(key string) (string, error) {
	key = strings.TrimLeft(strings.TrimSpace(key), "/")
	if key == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidKey)
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." || segment == "." {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}
	return key, nil
}

type disabledPresigner struct{}

func (disabledPresigner) PresignUpload(context.Context, string, string) (*PresignedUpload, error) {
	return nil, ErrNotConfigured
}
