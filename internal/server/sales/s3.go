package sales

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/dmitrijs2005/salesinsight/internal/common"
)

// S3Config selects a CSV object in an S3-compatible bucket.
type S3Config struct {
	Bucket       string
	Key          string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

type objectGetter interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads the CSV from object storage.
type S3Source struct {
	bucket string
	key    string
	client objectGetter
}

// loadAWSConfig is a seam for tests.
var loadAWSConfig = config.LoadDefaultConfig

func NewS3Source(ctx context.Context, c S3Config) (*S3Source, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(c.Region)}
	if c.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(c.AccessKey, c.SecretKey, "")))
	}

	cfg, err := loadAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(c.BaseEndpoint)
			// MinIO and most self-hosted stores need path-style addressing.
			o.UsePathStyle = true
		}
	})

	return &S3Source{bucket: c.Bucket, key: c.Key, client: client}, nil
}

func (s *S3Source) Name() string {
	return "s3://" + s.bucket + "/" + s.key
}

func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isMissingObject(err) {
			return nil, fmt.Errorf("%w: %s", common.ErrDataUnavailable, s.Name())
		}
		return nil, fmt.Errorf("get object %s: %w", s.Name(), err)
	}
	return out.Body, nil
}

func isMissingObject(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound", "NoSuchBucket":
			return true
		}
	}
	return false
}
