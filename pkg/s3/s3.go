package s3

import (
	"context"
	"fmt"

	"pilates-club/pkg/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Usage summarises the objects stored in the media bucket.
type Usage struct {
	Bucket  string `json:"bucket"`
	Objects int64  `json:"objects"`
	Bytes   int64  `json:"bytes"`
}

type Client struct {
	s3Client *s3.S3
	bucket   string
}

// NewClient returns nil, nil when no bucket is configured.
func NewClient(cfg *config.Config) (*Client, error) {
	if cfg.S3BucketName == "" {
		return nil, nil
	}

	awsConfig := &aws.Config{
		Region: aws.String(cfg.AWSRegion),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	// Support MinIO for local development
	if cfg.AWSEndpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.AWSEndpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
		if cfg.S3UseSSL == "false" {
			awsConfig.DisableSSL = aws.Bool(true)
		}
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &Client{
		s3Client: s3.New(sess),
		bucket:   cfg.S3BucketName,
	}, nil
}

func (c *Client) Bucket() string {
	return c.bucket
}

// BucketUsage walks every object in the bucket and totals their sizes.
func (c *Client) BucketUsage(ctx context.Context) (*Usage, error) {
	usage := &Usage{Bucket: c.bucket}

	err := c.s3Client.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			usage.Objects++
			usage.Bytes += aws.Int64Value(obj.Size)
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list bucket %s: %w", c.bucket, err)
	}

	return usage, nil
}
