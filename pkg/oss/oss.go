package oss

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"vidtube.com/config"
)

// Media storage collaborator. The engagement core never touches bytes; this
// wrapper exists so the video publish/delete paths can hand assets to object
// storage through a narrow surface.

var (
	client *minio.Client
	bucket string
)

func Init() error {
	cfg := config.ConfigInfo.Minio
	c, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return errors.Wrap(err, "minio.New failed")
	}
	client = c
	bucket = cfg.Bucket

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return errors.Wrap(err, "BucketExists failed")
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.Wrap(err, "MakeBucket failed")
		}
	}
	return nil
}

// UploadObject streams one media asset and returns its public URL.
func UploadObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if client == nil {
		return "", errors.New("oss not initialized")
	}
	_, err := client.PutObject(ctx, bucket, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrapf(err, "PutObject %s failed", objectName)
	}
	scheme := "http"
	if config.ConfigInfo.Minio.UseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, config.ConfigInfo.Minio.Endpoint, bucket, objectName), nil
}

func DeleteObject(ctx context.Context, objectName string) error {
	if client == nil {
		return errors.New("oss not initialized")
	}
	if err := client.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		return errors.Wrapf(err, "RemoveObject %s failed", objectName)
	}
	return nil
}
