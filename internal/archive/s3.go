// Package archive stores copies of generated exports in S3-compatible object
// storage.
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

// S3API is the subset of the S3 client used by S3Archiver.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Archiver writes exports to one bucket under an optional key prefix.
type S3Archiver struct {
	client S3API
	bucket string
	prefix string
}

// NewS3Archiver returns an archiver writing to bucket. prefix, when not
// empty, is prepended to every key with a "/".
func NewS3Archiver(client S3API, bucket, prefix string) *S3Archiver {
	return &S3Archiver{client: client, bucket: bucket, prefix: prefix}
}

// Store uploads body as a CSV object named key.
func (a *S3Archiver) Store(ctx context.Context, key string, body []byte) error {
	if a.prefix != "" {
		key = path.Join(a.prefix, key)
	}
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(a.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String("text/csv"),
	})
	if err != nil {
		return fmt.Errorf("archive.S3Archiver.Store: s3://%s/%s: %w", a.bucket, key, err)
	}
	return nil
}

// NewS3Client builds an S3 client from the default AWS credential chain.
// A non-empty endpoint selects an S3-compatible service (such as MinIO or
// LocalStack) addressed path-style.
func NewS3Client(ctx context.Context, region, endpoint string) (*s3.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("archive.NewS3Client: %w", err)
	}

	var opts []func(*s3.Options)
	if endpoint != "" {
		opts = append(opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
	}
	return s3.NewFromConfig(cfg, opts...), nil
}
