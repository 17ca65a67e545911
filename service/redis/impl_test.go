package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/database/redisclient"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/metrics"
)

var mockCtx = ctx.Background()

type redisSuite struct {
	suite.Suite

	im Service
}

func (s *redisSuite) SetupSuite() {
	pool := redisclient.MustConnectRedis("localhost:6379", "", redisclient.RedisParam{
		PoolMultiplier: float64(20),
		Retry:          true,
	})
	s.im = New("test", metrics.New("test"), &Pools{Src: pool})
}

func (s *redisSuite) SetupTest() {
	s.im.Del(mockCtx, "test-redis:k1", "test-redis:k2", "test-redis:counter")
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func (s *redisSuite) TestSetGet() {
	_, err := s.im.Get(mockCtx, "test-redis:k1")
	s.ErrorIs(err, ErrNotFound)

	s.NoError(s.im.Set(mockCtx, "test-redis:k1", []byte("v1"), time.Minute))

	val, err := s.im.Get(mockCtx, "test-redis:k1")
	s.NoError(err)
	s.Equal([]byte("v1"), val)
}

func (s *redisSuite) TestTTL() {
	_, err := s.im.TTL(mockCtx, "test-redis:k1")
	s.ErrorIs(err, ErrNotFound)

	s.NoError(s.im.Set(mockCtx, "test-redis:k1", []byte("v1"), Forever))
	_, err = s.im.TTL(mockCtx, "test-redis:k1")
	s.ErrorIs(err, ErrNoTTL)

	s.NoError(s.im.Set(mockCtx, "test-redis:k2", []byte("v2"), time.Minute))
	ttl, err := s.im.TTL(mockCtx, "test-redis:k2")
	s.NoError(err)
	s.Greater(ttl, 0)
}

func (s *redisSuite) TestDel() {
	s.NoError(s.im.Set(mockCtx, "test-redis:k1", []byte("v1"), time.Minute))
	s.NoError(s.im.Set(mockCtx, "test-redis:k2", []byte("v2"), time.Minute))

	affected, err := s.im.Del(mockCtx, "test-redis:k1", "test-redis:k2")
	s.NoError(err)
	s.Equal(2, affected)

	affected, err = s.im.Del(mockCtx, "test-redis:k1")
	s.NoError(err)
	s.Equal(0, affected)
}

func (s *redisSuite) TestExists() {
	exists, err := s.im.Exists(mockCtx, "test-redis:k1")
	s.NoError(err)
	s.False(exists)

	s.NoError(s.im.Set(mockCtx, "test-redis:k1", []byte("v1"), time.Minute))

	exists, err = s.im.Exists(mockCtx, "test-redis:k1")
	s.NoError(err)
	s.True(exists)
}

func (s *redisSuite) TestIncrby() {
	res, err := s.im.Incrby(mockCtx, "test-redis:counter", 2)
	s.NoError(err)
	s.Equal(int64(2), res)

	res, err = s.im.Incrby(mockCtx, "test-redis:counter", 3)
	s.NoError(err)
	s.Equal(int64(5), res)
}
