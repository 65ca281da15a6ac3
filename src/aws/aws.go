package aws

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/daids/gif2esp/src/global"
	"github.com/daids/gif2esp/src/utils"
	"github.com/sirupsen/logrus"
)

var (
	AclPublicRead       = utils.StringPointer("public-read")
	DefaultCacheControl = utils.StringPointer("public, max-age=31536000, immutable")
)

type AwsS3Instance struct {
	session    *session.Session
	uploader   *s3manager.Uploader
	downloader *s3manager.Downloader
}

func NewS3(ctx global.Context) global.AwsS3 {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(ctx.Config().Aws.Region),
		Credentials: credentials.NewStaticCredentials(
			ctx.Config().Aws.AccessToken,
			ctx.Config().Aws.SecretKey,
			"",
		),
	})
	if err != nil {
		logrus.Fatal("failed to create aws session: ", err)
	}

	return &AwsS3Instance{
		session:    sess,
		uploader:   s3manager.NewUploader(sess),
		downloader: s3manager.NewDownloader(sess),
	}
}

func (a *AwsS3Instance) UploadFile(ctx context.Context, bucket, key string, data io.Reader, contentType, acl, cacheControl *string) error {
	_, err := a.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:       aws.String(bucket),
		Key:          aws.String(key),
		Body:         data,
		ContentType:  contentType,
		ACL:          acl,
		CacheControl: cacheControl,
	})
	return err
}

func (a *AwsS3Instance) DownloadFile(ctx context.Context, bucket, key string, file io.WriterAt) error {
	_, err := a.downloader.DownloadWithContext(ctx, file, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	return err
}
