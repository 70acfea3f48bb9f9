package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const recipeImagesPath = "recipes/"

type ImageStorage interface {
	// UploadRecipeImage stores data under the recipes prefix and returns the
	// object key and its public URL.
	UploadRecipeImage(ctx context.Context, data []byte, filename string) (key, url string, err error)
}

type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type storageClient struct {
	bucket string
	region string
	client putObjectAPI
}

func NewStorageClient(ctx context.Context, region, bucket string) (ImageStorage, error) {
	if bucket == "" {
		return nil, errors.New("bucket name is empty")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &storageClient{
		bucket: bucket,
		region: region,
		client: s3.NewFromConfig(cfg),
	}, nil
}

func (s *storageClient) UploadRecipeImage(ctx context.Context, data []byte, filename string) (string, string, error) {
	if filename == "" {
		return "", "", errors.New("filename is empty")
	}

	key := recipeImagesPath + filename
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: &mimeType,
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", "", err
	}
	return key, s.objectURL(key), nil
}

func (s *storageClient) objectURL(key string) string {
	if s.region == "" {
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
