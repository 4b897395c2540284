package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"resume-builder-backend/internal/domain"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakeUploader) Upload(_ context.Context, in *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &manager.UploadOutput{}, f.err
}

type fakeDeleter struct {
	keys []string
}

func (f *fakeDeleter) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.keys = append(f.keys, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func testStore(up *fakeUploader, del *fakeDeleter) *S3Store {
	s := newS3Store("resumes-bucket", "https://cdn.example.com", up, del)
	s.newKey = func(folder, ext string) string { return folder + "/fixed" + ext }
	return s
}

func TestS3Store_Upload(t *testing.T) {
	up := &fakeUploader{}
	s := testStore(up, &fakeDeleter{})

	url, err := s.Upload(context.Background(), domain.MediaObject{
		Folder:      domain.FolderCertifications,
		Filename:    "My Cert.PDF",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.7"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/certifications/fixed.pdf", url)
	assert.Equal(t, "resumes-bucket", aws.ToString(up.input.Bucket))
	assert.Equal(t, "application/pdf", aws.ToString(up.input.ContentType))
	assert.Equal(t, []byte("%PDF-1.7"), up.body)
}

func TestS3Store_UploadError(t *testing.T) {
	s := testStore(&fakeUploader{err: errors.New("503")}, &fakeDeleter{})

	_, err := s.Upload(context.Background(), domain.MediaObject{Folder: "resumes", Filename: "r.pdf"})
	assert.Error(t, err)
}

func TestS3Store_Delete(t *testing.T) {
	del := &fakeDeleter{}
	s := testStore(&fakeUploader{}, del)

	require.NoError(t, s.Delete(context.Background(), "https://cdn.example.com/profile_photos/a.jpg"))
	require.NoError(t, s.Delete(context.Background(), "https://elsewhere.example.com/a.jpg"))
	require.NoError(t, s.Delete(context.Background(), "https://cdn.example.com/"))

	assert.Equal(t, []string{"profile_photos/a.jpg"}, del.keys)
}

func TestObjectKey(t *testing.T) {
	a := objectKey("resumes", ".pdf")
	b := objectKey("resumes", ".pdf")
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^resumes/[0-9a-f-]{36}\.pdf$`, a)
}

func TestResolveEndpoint(t *testing.T) {
	ep, err := resolveEndpoint(Config{Provider: ProviderWasabi, Region: "eu-west-1"})
	require.NoError(t, err)
	assert.Equal(t, "https://s3.eu-west-1.wasabisys.com", ep)

	_, err = resolveEndpoint(Config{Provider: ProviderWasabi, Region: "mars-1"})
	assert.Error(t, err)

	ep, err = resolveEndpoint(Config{Provider: ProviderCustom, Endpoint: "http://minio:9000/"})
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000", ep)

	ep, err = resolveEndpoint(Config{Provider: ProviderAWS})
	require.NoError(t, err)
	assert.Empty(t, ep)

	assert.Equal(t, "https://b.s3.us-east-1.amazonaws.com", defaultBaseURL(Config{Bucket: "b", Region: "us-east-1"}, ""))
	assert.Equal(t, "http://minio:9000/b", defaultBaseURL(Config{Bucket: "b"}, "http://minio:9000"))
}
