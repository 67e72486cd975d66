package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	appconfig "github.com/promovia/promovia-api/config"
)

// Client wraps the S3 uploader used for captured order artifacts.
type Client struct {
	uploader  *manager.Uploader
	s3        *s3.Client
	bucket    string
	publicURL string
}

func NewClient(ctx context.Context, cfg *appconfig.Config) (*Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &Client{
		uploader:  manager.NewUploader(client),
		s3:        client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimSuffix(cfg.S3PublicBaseURL, "/"),
	}, nil
}

// Upload stores one object publicly and returns the URL it is served from.
func (c *Client) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	result, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		Body:        body,
		ACL:         "public-read",
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}
	if c.publicURL != "" {
		return c.publicURL + "/" + key, nil
	}
	return result.Location, nil
}

// Delete removes an object. Used to clean up artifacts whose order row was
// never committed.
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.s3.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	})
	return err
}

// ObjectKey builds a unique key for an uploaded file, keeping enough of the
// original name to stay recognizable in the bucket console.
func ObjectKey(prefix, filename string) string {
	base := sanitize(filepath.Base(filename))
	return fmt.Sprintf("%s/%s-%s-%s", prefix, time.Now().Format("20060102150405"), uuid.NewString()[:8], base)
}

func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
