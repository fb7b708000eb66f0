package dispense

import (
	"context"
	"fmt"
	"time"

	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/MirrorChyan/ota-backend/internal/model"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/zap"
)

const defaultRegion = "us-east-1"

type ObjectStorageDistributor struct {
	*DistributeLogic
	presign *s3.PresignClient
	bucket  string
	expires time.Duration
}

func NewObjectStorageDistributor(base *DistributeLogic, cfg config.S3Config) (*ObjectStorageDistributor, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 distributor needs a bucket")
	}
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = true
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	expires := cfg.PresignExpires
	if expires <= 0 {
		expires = config.DefaultPresignExpires
	}

	return &ObjectStorageDistributor{
		DistributeLogic: base,
		presign:         s3.NewPresignClient(client),
		bucket:          cfg.Bucket,
		expires:         expires,
	}, nil
}

func (d *ObjectStorageDistributor) Name() string {
	return TypeS3
}

func (d *ObjectStorageDistributor) Distribute(ctx context.Context, info *model.DistributeInfo) (string, error) {
	d.logger.Debug("Distribute Use By",
		zap.String("name", d.Name()),
		zap.String("blob key", info.BlobKey),
	)

	req, err := d.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.bucket),
		Key:    aws.String(info.BlobKey),
	}, s3.WithPresignExpires(d.expires))
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", info.BlobKey, err)
	}
	return req.URL, nil
}
