package redis

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/turtacn/BullsEye-Radar/internal/infrastructure/monitoring/logging"
	pkgerrors "github.com/turtacn/BullsEye-Radar/pkg/errors"
)

type CacheTestSuite struct {
	suite.Suite
	client *Client
	mock   redismock.ClientMock
	cache  Cache
}

func (s *CacheTestSuite) SetupTest() {
	db, mock := redismock.NewClientMock()
	s.mock = mock
	s.client = NewClientWithRDB(db, logging.NewNopLogger())
	s.cache = NewRedisCache(s.client, logging.NewNopLogger(), WithPrefix("test:"))
}

func (s *CacheTestSuite) TearDownTest() {
	assert.NoError(s.T(), s.mock.ExpectationsWereMet())
}

type testSpec struct {
	Dataset string `json:"dataset"`
	Points  int    `json:"points"`
}

func (s *CacheTestSuite) TestGet_CacheHit() {
	val := testSpec{Dataset: "d1", Points: 12}
	data, _ := json.Marshal(val)

	s.mock.ExpectGet("test:spec:d1").SetVal(string(data))

	var dest testSpec
	err := s.cache.Get(context.Background(), "spec:d1", &dest)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), val, dest)
}

func (s *CacheTestSuite) TestGet_CacheMiss() {
	s.mock.ExpectGet("test:absent").RedisNil()

	var dest testSpec
	err := s.cache.Get(context.Background(), "absent", &dest)
	assert.Equal(s.T(), ErrCacheMiss, err)
}

func (s *CacheTestSuite) TestGet_CorruptPayload() {
	s.mock.ExpectGet("test:bad").SetVal("{not json")

	var dest testSpec
	err := s.cache.Get(context.Background(), "bad", &dest)
	require.Error(s.T(), err)
	assert.True(s.T(), pkgerrors.IsCode(err, pkgerrors.ErrCodeSerialization))
}

// A zero default TTL makes the jitter a no-op, so the expectation is exact.
func (s *CacheTestSuite) TestSet_Success() {
	cache := NewRedisCache(s.client, logging.NewNopLogger(), WithPrefix("test:"), WithDefaultTTL(0))

	val := testSpec{Dataset: "d1", Points: 3}
	data, _ := json.Marshal(val)
	s.mock.ExpectSet("test:spec:d1", data, 0).SetVal("OK")

	err := cache.Set(context.Background(), "spec:d1", val, 0)
	assert.NoError(s.T(), err)
}

func (s *CacheTestSuite) TestDelete_Success() {
	s.mock.ExpectDel("test:k1", "test:k2").SetVal(2)

	err := s.cache.Delete(context.Background(), "k1", "k2")
	assert.NoError(s.T(), err)
}

func (s *CacheTestSuite) TestDelete_NoKeys() {
	assert.NoError(s.T(), s.cache.Delete(context.Background()))
}

func (s *CacheTestSuite) TestGetOrSet_Hit() {
	val := testSpec{Dataset: "d1", Points: 7}
	data, _ := json.Marshal(val)
	s.mock.ExpectGet("test:spec:d1").SetVal(string(data))

	loaderCalled := false
	var dest testSpec
	err := s.cache.GetOrSet(context.Background(), "spec:d1", &dest, 0, func(ctx context.Context) (interface{}, error) {
		loaderCalled = true
		return nil, nil
	})
	require.NoError(s.T(), err)
	assert.False(s.T(), loaderCalled)
	assert.Equal(s.T(), val, dest)
}

func (s *CacheTestSuite) TestGetOrSet_LoaderError() {
	s.mock.ExpectGet("test:spec:d1").RedisNil()

	var dest testSpec
	wantErr := pkgerrors.New(pkgerrors.ErrCodeDatasetNotFound, "gone")
	err := s.cache.GetOrSet(context.Background(), "spec:d1", &dest, 0, func(ctx context.Context) (interface{}, error) {
		return nil, wantErr
	})
	assert.Equal(s.T(), wantErr, err)
}

func (s *CacheTestSuite) TestDeleteByPrefix() {
	s.mock.ExpectScan(0, "test:spec:d1:*", 100).SetVal([]string{"test:spec:d1:a", "test:spec:d1:b"}, 0)
	s.mock.ExpectDel("test:spec:d1:a", "test:spec:d1:b").SetVal(2)

	n, err := s.cache.DeleteByPrefix(context.Background(), "spec:d1:")
	require.NoError(s.T(), err)
	assert.EqualValues(s.T(), 2, n)
}

func (s *CacheTestSuite) TestPing() {
	s.mock.ExpectPing().SetVal("PONG")
	assert.NoError(s.T(), s.cache.Ping(context.Background()))
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

//Personal.AI order the ending
