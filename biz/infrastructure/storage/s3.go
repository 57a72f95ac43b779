package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"class-hive/biz/infrastructure/config"
	"class-hive/biz/infrastructure/consts"
	"class-hive/biz/infrastructure/util/log"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Client uploads documents and profile pictures to the configured
// S3-compatible bucket and hands back public URLs.
type Client struct {
	uploader *s3manager.Uploader
	cfg      *config.Storage
}

func NewClient(c *config.Config) (*Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String(c.Storage.Region),
		Endpoint:         aws.String(c.Storage.Endpoint),
		Credentials:      credentials.NewStaticCredentials(c.Storage.AccessKey, c.Storage.SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage session: %w", err)
	}

	log.Info("NewStorageClient bucket: %s", c.Storage.Bucket)
	return &Client{
		uploader: s3manager.NewUploader(sess),
		cfg:      &c.Storage,
	}, nil
}

// AllowedType reports whether the upload filter accepts the content type.
func AllowedType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return lo.Contains(consts.AllowedUploadTypes, ct)
}

// ObjectKey builds a collision-free key under prefix, keeping the original
// extension.
func ObjectKey(prefix, filename string) string {
	ext := path.Ext(filename)
	return fmt.Sprintf("%s/%s%s", prefix, uuid.New().String(), ext)
}

func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	out, err := c.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(c.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}

	if c.cfg.BaseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(c.cfg.BaseURL, "/"), key), nil
	}
	return out.Location, nil
}
