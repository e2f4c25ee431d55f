package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

var (
	AllowImage = []string{"image/jpeg", "image/png", "image/webp"}

	ErrFileTypeNotAllowed = errors.New("file type is not allowed")
)

type (
	AwsS3 interface {
		UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error)
		DeleteFile(ctx context.Context, objectKey string) error
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	Config struct {
		Bucket          string
		Region          string
		Endpoint        string // S3-compatible endpoint such as MinIO; empty for AWS
		PublicURL       string // base for public links; defaults to the virtual-hosted bucket URL
		PathStyle       bool
		AccessKeyID     string
		SecretAccessKey string
	}

	awsS3 struct {
		client    *s3.Client
		bucket    string
		publicURL string
	}
)

func NewAwsS3(ctx context.Context, cfg Config) (AwsS3, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "eu-west-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	publicURL := cfg.PublicURL
	if publicURL == "" {
		if cfg.Endpoint != "" {
			publicURL = strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
		}
	}
	return NewAwsS3WithClient(client, cfg.Bucket, publicURL), nil
}

func NewAwsS3WithClient(client *s3.Client, bucket, publicURL string) AwsS3 {
	return &awsS3{client: client, bucket: bucket, publicURL: strings.TrimSuffix(publicURL, "/")}
}

// UploadFile stores file under folder with a random name that keeps the
// original extension, and returns the object key.
func (s *awsS3) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		head := make([]byte, 512)
		n, _ := src.Read(head)
		contentType = http.DetectContentType(head[:n])
		if _, err := src.Seek(0, 0); err != nil {
			return "", fmt.Errorf("failed to rewind file: %w", err)
		}
	}
	if len(allowTypes) > 0 && !slices.Contains(allowTypes, contentType) {
		return "", fmt.Errorf("%w: %s", ErrFileTypeNotAllowed, contentType)
	}

	name := fileName
	if name == "" {
		name = uuid.NewString()
	}
	objectKey := path.Join(folder, name+strings.ToLower(filepath.Ext(file.Filename)))

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          src,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(file.Size),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", objectKey, err)
	}
	return objectKey, nil
}

func (s *awsS3) DeleteFile(ctx context.Context, objectKey string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", objectKey, err)
	}
	return nil
}

func (s *awsS3) GetPublicLinkKey(objectKey string) string {
	return s.publicURL + "/" + objectKey
}

// GetObjectKeyFromLink returns "" for links that do not point into this bucket.
func (s *awsS3) GetObjectKeyFromLink(link string) string {
	key, ok := strings.CutPrefix(link, s.publicURL+"/")
	if !ok {
		return ""
	}
	return key
}
