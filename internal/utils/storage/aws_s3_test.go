package storage

import (
	"Recipe-Sharing-API/internal/utils"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateAWSConfig(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	t.Setenv("AWS_CONFIG_FILE", empty)
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", empty)
}

func TestNewAwsS3WithoutBucket(t *testing.T) {
	isolateAWSConfig(t)
	t.Setenv("AWS_S3_BUCKET", "")
	utils.LoadConfig()

	bucket, err := NewAwsS3()
	assert.NoError(t, err)
	assert.Nil(t, bucket)
}

func TestNewAwsS3ReportsConfigFailure(t *testing.T) {
	isolateAWSConfig(t)
	t.Setenv("AWS_S3_BUCKET", "recipe-images")
	t.Setenv("AWS_S3_REGION", "ap-southeast-1")
	t.Setenv("AWS_PROFILE", "profile-that-does-not-exist")
	utils.LoadConfig()

	bucket, err := NewAwsS3()
	assert.Nil(t, bucket)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recipe-images")
}

func TestNewAwsS3(t *testing.T) {
	isolateAWSConfig(t)
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_S3_BUCKET", "recipe-images")
	t.Setenv("AWS_S3_REGION", "ap-southeast-1")
	t.Setenv("AWS_ACCESS_KEY", "key")
	t.Setenv("AWS_SECRET_KEY", "secret")
	utils.LoadConfig()

	bucket, err := NewAwsS3()
	require.NoError(t, err)
	require.NotNil(t, bucket)
}
