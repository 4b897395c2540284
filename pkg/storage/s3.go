// Package storage hosts profile attachments in an S3-compatible bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"resume-builder-backend/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Provider is the S3-compatible storage vendor
type Provider string

const (
	ProviderAWS    Provider = "aws"
	ProviderWasabi Provider = "wasabi"
	ProviderCustom Provider = "custom"
)

// wasabiEndpoints maps regions to Wasabi endpoints
var wasabiEndpoints = map[string]string{
	"us-east-1":      "s3.us-east-1.wasabisys.com",
	"us-east-2":      "s3.us-east-2.wasabisys.com",
	"us-west-1":      "s3.us-west-1.wasabisys.com",
	"eu-central-1":   "s3.eu-central-1.wasabisys.com",
	"eu-west-1":      "s3.eu-west-1.wasabisys.com",
	"ap-northeast-1": "s3.ap-northeast-1.wasabisys.com",
	"ap-southeast-1": "s3.ap-southeast-1.wasabisys.com",
}

type Config struct {
	Provider        Provider
	Region          string
	Bucket          string
	Endpoint        string // required for custom, optional override for wasabi
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string // defaults to the provider's virtual-host or path-style URL
}

type uploader interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type objectDeleter interface {
	DeleteObject(ctx context.Context, input *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Store implements domain.MediaStore.
type S3Store struct {
	bucket   string
	baseURL  string
	uploader uploader
	client   objectDeleter
	newKey   func(folder, ext string) string
}

var _ domain.MediaStore = (*S3Store)(nil)

// NewS3Store builds an S3 client for the configured provider.
// Wasabi and custom endpoints use path-style addressing.
func NewS3Store(ctx context.Context, cfg Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint, err := resolveEndpoint(cfg)
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := strings.TrimRight(cfg.PublicBaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL(cfg, endpoint)
	}

	return newS3Store(cfg.Bucket, baseURL, manager.NewUploader(client), client), nil
}

func newS3Store(bucket, baseURL string, up uploader, client objectDeleter) *S3Store {
	return &S3Store{
		bucket:   bucket,
		baseURL:  baseURL,
		uploader: up,
		client:   client,
		newKey:   objectKey,
	}
}

func resolveEndpoint(cfg Config) (string, error) {
	switch cfg.Provider {
	case ProviderWasabi:
		if cfg.Endpoint != "" {
			return withScheme(cfg.Endpoint), nil
		}
		if ep, ok := wasabiEndpoints[cfg.Region]; ok {
			return "https://" + ep, nil
		}
		return "", fmt.Errorf("unknown Wasabi region: %s", cfg.Region)
	case ProviderCustom:
		if cfg.Endpoint == "" {
			return "", fmt.Errorf("S3_ENDPOINT is required for custom provider")
		}
		return withScheme(cfg.Endpoint), nil
	default:
		return "", nil
	}
}

func withScheme(endpoint string) string {
	endpoint = strings.TrimRight(endpoint, "/")
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return "https://" + endpoint
}

func defaultBaseURL(cfg Config, endpoint string) string {
	if endpoint != "" {
		return endpoint + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}

// objectKey names objects <folder>/<uuid><ext> so client filenames never reach the bucket.
func objectKey(folder, ext string) string {
	return path.Join(folder, uuid.NewString()+ext)
}

func (s *S3Store) Upload(ctx context.Context, obj domain.MediaObject) (string, error) {
	key := s.newKey(obj.Folder, strings.ToLower(filepath.Ext(obj.Filename)))

	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(obj.Data),
		ContentType: aws.String(obj.ContentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.baseURL + "/" + key, nil
}

// Delete releases an object previously returned by Upload. URLs outside this
// store are ignored.
func (s *S3Store) Delete(ctx context.Context, url string) error {
	key, ok := s.KeyFromURL(url)
	if !ok {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *S3Store) KeyFromURL(url string) (string, bool) {
	prefix := s.baseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	key := strings.TrimPrefix(url, prefix)
	if key == "" {
		return "", false
	}
	return key, true
}
