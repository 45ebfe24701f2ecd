// Package archive uploads export snapshots to S3-compatible object storage
// (AWS S3 or MinIO).
package archive

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds the bucket location. Credentials come from the default AWS
// chain (environment, shared config, instance role).
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional; set for MinIO or another S3-compatible server
	PathStyle bool
	Prefix    string // optional key prefix, e.g. "exports"
}

// S3Archiver writes objects into a single bucket.
type S3Archiver struct {
	client *s3.Client
	bucket string
	prefix string
}

// NewS3Archiver builds an S3Archiver from cfg. optFns are applied to the S3
// client options after cfg, which lets tests swap the transport.
func NewS3Archiver(ctx context.Context, cfg Config, optFns ...func(*s3.Options)) (*S3Archiver, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("archive.NewS3Archiver: bucket is required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("archive.NewS3Archiver: load aws config: %w", err)
	}

	opts := append([]func(*s3.Options){func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	}}, optFns...)

	return &S3Archiver{
		client: s3.NewFromConfig(awsCfg, opts...),
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
	}, nil
}

// Upload stores body under the configured prefix and returns its s3:// URI.
func (a *S3Archiver) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	if a.prefix != "" {
		key = path.Join(a.prefix, key)
	}
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("archive.S3Archiver.Upload: put %s: %w", key, err)
	}
	return "s3://" + a.bucket + "/" + key, nil
}
