package minio

import (
	"context"
	"io"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/turtacn/BullsEye-Radar/pkg/errors"
)

type MockMinIOAPI struct {
	mock.Mock
}

func (m *MockMinIOAPI) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *MockMinIOAPI) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	args := m.Called(ctx, bucketName, opts)
	return args.Error(0)
}

func (m *MockMinIOAPI) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *MockMinIOAPI) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error) {
	// A functional *minio.Object needs a live connection, so only error paths
	// are mockable here.
	args := m.Called(ctx, bucketName, objectName, opts)
	return nil, args.Error(1)
}

func (m *MockMinIOAPI) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Error(0)
}

func (m *MockMinIOAPI) StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Get(0).(minio.ObjectInfo), args.Error(1)
}

// ─────────────────────────────────────────────────────────────────────────────
// Suite
// ─────────────────────────────────────────────────────────────────────────────

type StoreTestSuite struct {
	suite.Suite
	api    *MockMinIOAPI
	client *Client
	store  ArtifactStore
}

func (s *StoreTestSuite) SetupTest() {
	s.api = new(MockMinIOAPI)
	s.client = NewClientWithAPI(s.api, "bullseye-uploads", logging.NewNopLogger())
	s.store = NewArtifactStore(s.client, logging.NewNopLogger())
}

func (s *StoreTestSuite) TestPutCSV() {
	body := []byte("Asset,Company\nBX-101,Aridis\n")
	s.api.On("PutObject", mock.Anything, "bullseye-uploads", "datasets/d1/v2.csv",
		mock.Anything, int64(len(body)), mock.MatchedBy(func(opts minio.PutObjectOptions) bool {
			return opts.ContentType == "text/csv"
		})).Return(minio.UploadInfo{Size: int64(len(body))}, nil)

	err := s.store.PutCSV(context.Background(), "d1", 2, body)
	require.NoError(s.T(), err)
	s.api.AssertExpectations(s.T())
}

func (s *StoreTestSuite) TestPutCSV_Error() {
	s.api.On("PutObject", mock.Anything, mock.Anything, mock.Anything,
		mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	err := s.store.PutCSV(context.Background(), "d1", 1, []byte("x"))
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.IsCode(err, pkgerrors.ErrCodeStorageError))
}

func (s *StoreTestSuite) TestGetCSV_Error() {
	s.api.On("GetObject", mock.Anything, "bullseye-uploads", "datasets/d1/v1.csv", mock.Anything).
		Return(nil, assert.AnError)

	_, err := s.store.GetCSV(context.Background(), "d1", 1)
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.IsCode(err, pkgerrors.ErrCodeStorageError))
}

func (s *StoreTestSuite) TestDelete() {
	s.api.On("RemoveObject", mock.Anything, "bullseye-uploads", "datasets/d1/v1.csv", mock.Anything).
		Return(nil)

	assert.NoError(s.T(), s.store.Delete(context.Background(), "d1", 1))
}

func (s *StoreTestSuite) TestExists_Absent() {
	s.api.On("StatObject", mock.Anything, "bullseye-uploads", "datasets/d1/v1.csv", mock.Anything).
		Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey"})

	ok, err := s.store.Exists(context.Background(), "d1", 1)
	require.NoError(s.T(), err)
	assert.False(s.T(), ok)
}

func (s *StoreTestSuite) TestExists_Present() {
	s.api.On("StatObject", mock.Anything, "bullseye-uploads", "datasets/d1/v3.csv", mock.Anything).
		Return(minio.ObjectInfo{Size: 42}, nil)

	ok, err := s.store.Exists(context.Background(), "d1", 3)
	require.NoError(s.T(), err)
	assert.True(s.T(), ok)
}

func (s *StoreTestSuite) TestEnsureBucket_AlreadyExists() {
	s.api.On("BucketExists", mock.Anything, "bullseye-uploads").Return(true, nil)

	require.NoError(s.T(), s.client.EnsureBucket(context.Background()))
	s.api.AssertNotCalled(s.T(), "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
}

func (s *StoreTestSuite) TestEnsureBucket_Creates() {
	s.api.On("BucketExists", mock.Anything, "bullseye-uploads").Return(false, nil)
	s.api.On("MakeBucket", mock.Anything, "bullseye-uploads", mock.Anything).Return(nil)

	require.NoError(s.T(), s.client.EnsureBucket(context.Background()))
	s.api.AssertExpectations(s.T())
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

//Personal.AI order the ending
