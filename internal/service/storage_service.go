package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"

	cfg "github.com/maheshrc27/creatordash/configs"
	"github.com/maheshrc27/creatordash/internal/models"
	"github.com/maheshrc27/creatordash/internal/repository"
)

type StorageService struct {
	config cfg.Config
	ar     repository.AssetRepository
}

func NewStorageService(cfg cfg.Config, ar repository.AssetRepository) *StorageService {
	return &StorageService{config: cfg, ar: ar}
}

var allowedImageTypes = map[string]struct{}{
	"jpg": {}, "jpeg": {}, "png": {}, "gif": {}, "webp": {},
}

func (s *StorageService) client(ctx context.Context) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(s.config.R2.AccessKey, s.config.R2.SecretKey, "")),
		config.WithRegion("auto"),
	)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", s.config.R2.AccountID))
	}), nil
}

// UploadImage stores an image under a randomized key that keeps the original
// file extension and returns its public URL. Uploads are never retried.
func (s *StorageService) UploadImage(ctx context.Context, userID int64, file *multipart.FileHeader) (string, error) {
	if userID == 0 {
		return "", ErrUnauthenticated
	}
	if file == nil {
		return "", fmt.Errorf("%w: no file provided", ErrInvalidArgument)
	}

	fileContent, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("error opening file: %w", err)
	}
	defer fileContent.Close()

	fileBytes, err := io.ReadAll(fileContent)
	if err != nil {
		return "", fmt.Errorf("error reading file content: %w", err)
	}

	fileType, err := filetype.Match(fileBytes)
	if err != nil || fileType == types.Unknown {
		return "", fmt.Errorf("%w: unsupported file type", ErrInvalidArgument)
	}
	if _, ok := allowedImageTypes[fileType.Extension]; !ok {
		return "", fmt.Errorf("%w: file type %s is not allowed", ErrInvalidArgument, fileType.Extension)
	}

	id, err := gonanoid.New()
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = "." + fileType.Extension
	}
	key := id + ext

	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.config.R2.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(fileBytes),
		ContentType: aws.String(fileType.MIME.Value),
	})
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	fileURL := s.PublicURL(key)

	asset := &models.Asset{
		UserID:   userID,
		FileKey:  key,
		FileType: fileType.MIME.Value,
		FileSize: int64(len(fileBytes)),
		FileURL:  fileURL,
	}
	if _, err := s.ar.Create(ctx, asset); err != nil {
		return "", fmt.Errorf("error saving asset record: %w", err)
	}

	return fileURL, nil
}

func (s *StorageService) RemoveObject(ctx context.Context, key string) error {
	client, err := s.client(ctx)
	if err != nil {
		return err
	}

	_, err = client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.config.R2.BucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (s *StorageService) PublicURL(key string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.config.R2.PublicBaseURL, "/"), key)
}
