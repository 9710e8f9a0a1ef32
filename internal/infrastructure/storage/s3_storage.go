package storage

import (
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"podcast-summarizer/internal/domain/dto"
	"podcast-summarizer/pkg/file"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Options struct {
	Bucket          string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint points the client at an S3-compatible service instead of AWS.
	Endpoint     string
	UsePathStyle bool
}

type S3Storage struct {
	client     *s3.Client
	presigner  *s3.PresignClient
	bucketName string
	region     string
	endpoint   string
	pathStyle  bool
}

// NewS3Storage resolves credentials once; the client is shared by all requests.
// Static keys win over the default chain when both are set.
func NewS3Storage(ctx context.Context, opts S3Options) (*S3Storage, error) {
	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(opts.Region)}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("AWS config yüklenemedi: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		o.UsePathStyle = opts.UsePathStyle
		// one attempt per call, the caller decides what to do with failures
		o.RetryMaxAttempts = 1
	})

	return &S3Storage{
		client:     client,
		presigner:  s3.NewPresignClient(client),
		bucketName: opts.Bucket,
		region:     opts.Region,
		endpoint:   strings.TrimRight(opts.Endpoint, "/"),
		pathStyle:  opts.UsePathStyle,
	}, nil
}

func (s *S3Storage) Write(ctx context.Context, key string, body io.Reader, size int64, contentType string) (*dto.WriteMeta, error) {
	meta := &dto.WriteMeta{Key: key, Size: size, ContentType: contentType}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucketName),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size >= 0 {
		input.ContentLength = aws.Int64(size)
	}
	if rs, ok := body.(io.ReadSeeker); ok {
		sum, err := file.HashSeeker(rs)
		if err != nil {
			return nil, err
		}
		input.ChecksumSHA256 = aws.String(base64.StdEncoding.EncodeToString(sum))
		meta.SHA256 = hex.EncodeToString(sum)
	}

	out, err := s.client.PutObject(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("S3 upload hatası: %w", err)
	}
	meta.ETag = strings.Trim(aws.ToString(out.ETag), `"`)
	return meta, nil
}

func (s *S3Storage) SignedReadURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("presign hatası: %w", err)
	}
	return req.URL, nil
}

// PublicURL is deterministic: bucket, region and key only.
func (s *S3Storage) PublicURL(key string) string {
	escaped := escapeKey(key)
	if s.endpoint != "" {
		if s.pathStyle {
			return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucketName, escaped)
		}
		if u, err := url.Parse(s.endpoint); err == nil && u.Host != "" {
			return fmt.Sprintf("%s://%s.%s/%s", u.Scheme, s.bucketName, u.Host, escaped)
		}
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, escaped)
}

func (s *S3Storage) Ping(ctx context.Context) error {
	_, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucketName)})
	if err != nil {
		return fmt.Errorf("bucket erişilemedi: %w", err)
	}
	return nil
}

func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
