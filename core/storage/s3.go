package storage

import (
	"context"

	appconfig "sportsmatch-api/core/config"
	"sportsmatch-api/core/constants"
	"sportsmatch-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Storage hands out presigned URLs for profile pictures; the API never
// proxies the bytes itself.
type Storage interface {
	PresignedGetURL(ctx context.Context, key string) (string, error)
	PresignedPutURL(ctx context.Context, key string, contentType string) (string, error)
}

type s3Storage struct {
	presign *s3.PresignClient
	bucket  string
}

func NewS3Storage(cfg appconfig.AWSConfig) Storage {
	client := s3.New(s3.Options{
		Region: cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		),
	})

	logger.Info("Storage:Init", "region", cfg.Region, "bucket", cfg.PicturesBucket)
	return &s3Storage{
		presign: s3.NewPresignClient(client, s3.WithPresignExpires(constants.PresignedURLExpiry)),
		bucket:  cfg.PicturesBucket,
	}
}

func (s *s3Storage) PresignedGetURL(ctx context.Context, key string) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Error("Storage:PresignedGetURL", err)
		return "", err
	}
	return req.URL, nil
}

func (s *s3Storage) PresignedPutURL(ctx context.Context, key string, contentType string) (string, error) {
	req, err := s.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Storage:PresignedPutURL", err)
		return "", err
	}
	return req.URL, nil
}
