package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"agency/config"
	"agency/infras/otel"
	"agency/shared/constant"
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
	defaultRegion    = "auto"
)

// S3 stores generated documents such as calendar invites in an S3-compatible bucket.
type S3 interface {
	Enabled() bool
	UploadFileBytes(ctx context.Context, directory, fileName, contentType string, fileData []byte) (url string, err error)
	DeleteFile(ctx context.Context, directory, objectName string) error
}

type bucket struct {
	client       *s3.Client
	name         string
	publicDomain string
	otel         otel.Otel
}

func (b *bucket) Enabled() bool {
	return true
}

func (b *bucket) scope(ctx context.Context, op, key string) (context.Context, otel.Scope) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+"."+op)
	scope.SetAttributes(map[string]any{
		otelAttrFileName: key,
		otelAttrBucket:   b.name,
	})

	return ctx, scope
}

func (b *bucket) UploadFileBytes(ctx context.Context, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	key := path.Join(directory, fileName)

	ctx, scope := b.scope(ctx, "UploadFileBytes", key)
	defer scope.End()
	defer scope.TraceIfError(err)

	body := bytes.NewReader(fileData)

	if _, err = b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.name),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(body.Size()),
	}); err != nil {
		log.Error().Err(err).Str("key", key).Msg("object upload failed")

		return constant.Empty, fmt.Errorf("upload %s: %w", key, err)
	}

	return b.publicURL(key), nil
}

func (b *bucket) DeleteFile(ctx context.Context, directory, objectName string) (err error) {
	key := path.Join(directory, objectName)

	ctx, scope := b.scope(ctx, "DeleteFile", key)
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	}); err != nil {
		log.Error().Err(err).Str("key", key).Msg("object delete failed")

		return fmt.Errorf("delete %s: %w", key, err)
	}

	return nil
}

func (b *bucket) publicURL(key string) string {
	if b.publicDomain == "" {
		return key
	}

	return strings.TrimSuffix(b.publicDomain, "/") + "/" + key
}

// New returns a bucket client, or a disabled store when S3 is switched off.
func New(cfg *config.Config, otl otel.Otel) S3 {
	store := cfg.External.S3
	if !store.Enable {
		log.Info().Msg("S3 disabled, calendar invites will not be stored")

		return disabled{}
	}

	return &bucket{
		client: s3.New(s3.Options{
			Region:       defaultRegion,
			BaseEndpoint: aws.String(store.APIEndpoint),
			UsePathStyle: true,
			Credentials:  credentials.NewStaticCredentialsProvider(store.AccessKeyID, store.SecretAccessKey, ""),
		}),
		name:         store.BucketName,
		publicDomain: store.PublicDomain,
		otel:         otl,
	}
}

type disabled struct{}

func (disabled) Enabled() bool {
	return false
}

func (disabled) UploadFileBytes(_ context.Context, _, _, _ string, _ []byte) (string, error) {
	return constant.Empty, nil
}

func (disabled) DeleteFile(_ context.Context, _, _ string) error {
	return nil
}
