package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestUploadRecipeImage(t *testing.T) {
	fake := &fakePutter{}
	s := &storageClient{bucket: "codcoz-assets", region: "sa-east-1", client: fake}

	key, url, err := s.UploadRecipeImage(context.Background(), []byte("png-bytes"), "abc.PNG")
	require.NoError(t, err)

	assert.Equal(t, "recipes/abc.PNG", key)
	assert.Equal(t, "https://codcoz-assets.s3.sa-east-1.amazonaws.com/recipes/abc.PNG", url)
	assert.Equal(t, "codcoz-assets", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "image/png", aws.ToString(fake.input.ContentType))
	assert.Equal(t, []byte("png-bytes"), fake.body)
}

func TestUploadRecipeImageErrors(t *testing.T) {
	s := &storageClient{bucket: "b", client: &fakePutter{err: errors.New("boom")}}

	_, _, err := s.UploadRecipeImage(context.Background(), []byte("x"), "")
	assert.Error(t, err)

	_, _, err = s.UploadRecipeImage(context.Background(), []byte("x"), "a.jpg")
	assert.EqualError(t, err, "boom")
}

func TestNewStorageClientRequiresBucket(t *testing.T) {
	_, err := NewStorageClient(context.Background(), "sa-east-1", "")
	assert.Error(t, err)
}
