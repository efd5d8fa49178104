/*
Package storage publishes tile images to an S3 compatible bucket such as
AWS S3 or MinIO.
*/
package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const contentType = "image/png"

var errNoBucket = errors.New("storage: no bucket")

// Config describes where tiles are uploaded to. Endpoint, AccessKey and
// SecretKey are optional, without them the default AWS configuration chain
// is used.
type Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	Prefix    string
}

// Uploader copies written tiles to a bucket.
type Uploader struct {
	client *s3.Client
	cfg    Config
	logger *log.Logger
}

func loadOptions(cfg Config) []func(*config.LoadOptions) error {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}
	return opts
}

// New returns an Uploader for cfg.
func New(ctx context.Context, cfg Config, logger *log.Logger) (*Uploader, error) {
	if cfg.Bucket == "" {
		return nil, errNoBucket
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOptions(cfg)...)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		client: client,
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Key returns the object key used for the named tile
func (u *Uploader) Key(name string) string {
	return objectKey(u.cfg.Prefix, name)
}

func objectKey(prefix, name string) string {
	return path.Join(prefix, name)
}

func (u *Uploader) ensureBucket(ctx context.Context) error {
	if _, err := u.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(u.cfg.Bucket),
	}); err == nil {
		return nil
	}

	if _, err := u.client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(u.cfg.Bucket),
	}); err != nil {
		return fmt.Errorf("failed to create bucket %s: %w", u.cfg.Bucket, err)
	}
	u.logger.Printf("Created bucket %s\n", u.cfg.Bucket)

	return nil
}

func (u *Uploader) put(ctx context.Context, file, key string) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.cfg.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	return err
}

// Upload copies each named file in dir to the bucket, creating the bucket
// if necessary. It stops at the first failure.
func (u *Uploader) Upload(ctx context.Context, dir string, names []string) error {
	if err := u.ensureBucket(ctx); err != nil {
		return err
	}

	for _, name := range names {
		key := u.Key(name)
		if err := u.put(ctx, filepath.Join(dir, name), key); err != nil {
			return fmt.Errorf("failed to upload %s: %w", name, err)
		}
		u.logger.Printf("Uploaded \"%s\" to s3://%s/%s\n", name, u.cfg.Bucket, key)
	}

	return nil
}
