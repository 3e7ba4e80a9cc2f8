package oss

import (
	"context"
	"fmt"
	"io"

	"VidTube.com/config"
	"VidTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultRegion = "us-east-1"

// Storage 对象存储客户端 视频与封面分桶存放
// 上传时同时返回访问url和对象key 删除只凭key 不再从url反推
type Storage struct {
	client   *minio.Client
	endpoint string
}

func NewStorage() (*Storage, error) {
	cfg := config.ConfigInfo.Minio
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		hlog.Errorf("Failed to create MinIO client: %v", err)
		return nil, err
	}
	hlog.Infof("Connect Minio Success, endpoint: %s", cfg.Endpoint)
	return &Storage{client: client, endpoint: cfg.Endpoint}, nil
}

func (s *Storage) ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := s.client.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		err = s.client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: defaultRegion})
		if err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// UploadVideo 上传视频文件 返回访问url与对象key
func (s *Storage) UploadVideo(ctx context.Context, reader io.Reader, size int64) (string, string, error) {
	if err := s.ensureBucket(ctx, constants.VideoBucket); err != nil {
		return "", "", err
	}
	objectName := "video/" + uuid.New().String() + "/video.mp4"
	_, err := s.client.PutObject(ctx, constants.VideoBucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		hlog.Errorf("Failed to upload video: %v", err)
		return "", "", err
	}
	return s.objectUrl(constants.VideoBucket, objectName), objectName, nil
}

// UploadCover 上传视频封面 返回访问url与对象key
func (s *Storage) UploadCover(ctx context.Context, reader io.Reader, size int64) (string, string, error) {
	if err := s.ensureBucket(ctx, constants.PictureBucket); err != nil {
		return "", "", err
	}
	objectName := "cover/" + uuid.New().String() + "/cover.jpg"
	_, err := s.client.PutObject(ctx, constants.PictureBucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		hlog.Errorf("Failed to upload cover: %v", err)
		return "", "", err
	}
	return s.objectUrl(constants.PictureBucket, objectName), objectName, nil
}

// RemoveVideo 按key删除视频对象
func (s *Storage) RemoveVideo(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.client.RemoveObject(ctx, constants.VideoBucket, key, minio.RemoveObjectOptions{})
}

// RemoveCover 按key删除封面对象
func (s *Storage) RemoveCover(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	return s.client.RemoveObject(ctx, constants.PictureBucket, key, minio.RemoveObjectOptions{})
}

func (s *Storage) objectUrl(bucketName, objectName string) string {
	return fmt.Sprintf("http://%s/%s/%s", s.endpoint, bucketName, objectName)
}
