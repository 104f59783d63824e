package services

import (
	"context"
	"errors"
	"net/url"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sc "github.com/dmitrijs2005/aroha/internal/server/config"
)

func newExportSvc() *ExportService {
	cfg := &sc.Config{
		S3Region:       "us-east-1",
		S3RootUser:     "minioadmin",
		S3RootPassword: "minioadmin",
		S3BaseEndpoint: "http://127.0.0.1:9000",
		S3Bucket:       "aroha-exports",
	}
	svc := NewExportService(cfg)
	svc.now = func() time.Time { return time.Date(2026, 4, 7, 23, 30, 0, 0, time.UTC) }
	return svc
}

func restoreS3Seams(t *testing.T) {
	t.Helper()
	origLoad, origNewS3, origNewPre, origPut := loadDefaultAWSConfig, newS3ClientFromConfig, newS3PresignClient, presignPutObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		newS3ClientFromConfig = origNewS3
		newS3PresignClient = origNewPre
		presignPutObject = origPut
	})
}

var exportKeyRe = regexp.MustCompile(`^exports/u1/2026/4/7/[0-9a-f-]{36}\.json$`)

func TestExportKey_Layout(t *testing.T) {
	nz := time.FixedZone("NZST", 12*3600)
	// 8 April in Auckland is still 7 April in UTC
	key := ExportKey("u1", time.Date(2026, 4, 8, 11, 0, 0, 0, nz))
	assert.Regexp(t, exportKeyRe, key)
	assert.NotEqual(t, key, ExportKey("u1", time.Date(2026, 4, 8, 11, 0, 0, 0, nz)))
}

func Test_getPresignClient_AppliesConfig(t *testing.T) {
	restoreS3Seams(t)
	svc := newExportSvc()

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		var lo awsconfig.LoadOptions
		for _, fn := range optFns {
			if err := fn(&lo); err != nil {
				t.Fatalf("load options fn error: %v", err)
			}
		}
		if lo.Region != "us-east-1" {
			t.Fatalf("region not applied: %q", lo.Region)
		}
		if lo.Credentials == nil {
			t.Fatalf("credentials provider not applied")
		}
		return aws.Config{}, nil
	}

	var opts s3.Options
	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		for _, fn := range optFns {
			fn(&opts)
		}
		return &s3.Client{}
	}
	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		if c == nil {
			t.Fatalf("nil client passed to presign")
		}
		return &s3.PresignClient{}
	}

	pc, err := svc.getPresignClient(context.Background())
	require.NoError(t, err)
	require.NotNil(t, pc)
	require.NotNil(t, opts.BaseEndpoint)
	assert.Equal(t, "http://127.0.0.1:9000", *opts.BaseEndpoint)
	assert.True(t, opts.UsePathStyle)

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("load-fail")
	}
	_, err = svc.getPresignClient(context.Background())
	require.EqualError(t, err, "load-fail")
}

func TestPresignUpload_StubbedPresign(t *testing.T) {
	restoreS3Seams(t)
	svc := newExportSvc()

	var (
		gotBucket, gotKey, gotType string
		gotExpiry                  time.Duration
	)
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		var po s3.PresignOptions
		for _, fn := range optFns {
			fn(&po)
		}
		gotBucket, gotKey, gotType, gotExpiry = *in.Bucket, *in.Key, *in.ContentType, po.Expires
		return &v4.PresignedHTTPRequest{URL: "http://minio/" + *in.Key}, nil
	}

	key, u, err := svc.PresignUpload(context.Background(), "u1")
	require.NoError(t, err)
	assert.Regexp(t, exportKeyRe, key)
	assert.Equal(t, "http://minio/"+key, u)
	assert.Equal(t, "aroha-exports", gotBucket)
	assert.Equal(t, key, gotKey)
	assert.Equal(t, "application/json", gotType)
	assert.Equal(t, ExportUploadExpiry, gotExpiry)
}

func TestPresignUpload_Errors(t *testing.T) {
	t.Run("load config", func(t *testing.T) {
		restoreS3Seams(t)
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("load-fail")
		}
		_, _, err := newExportSvc().PresignUpload(context.Background(), "u1")
		require.ErrorContains(t, err, "error creating presign client: load-fail")
	})

	t.Run("presign", func(t *testing.T) {
		restoreS3Seams(t)
		presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
			return nil, errors.New("sign-fail")
		}
		_, _, err := newExportSvc().PresignUpload(context.Background(), "u1")
		require.ErrorContains(t, err, "error presigning upload: sign-fail")
	})
}

func TestPresignUpload_RealSigner(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/nonexistent")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/nonexistent")

	key, raw, err := newExportSvc().PresignUpload(context.Background(), "u1")
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", u.Host)
	assert.True(t, strings.HasPrefix(u.Path, "/aroha-exports/"+key), u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
