package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	mAccount "github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account/mocks"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/listing"
	mListing "github.com/TreyKys/TogetHed-Hackathon-sub000/domain/listing/mocks"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/middleware"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/redis"
	mRedis "github.com/TreyKys/TogetHed-Hackathon-sub000/service/redis/mocks"
)

// SetupCache binds the package once per process, so the backing mock and its
// key space are shared across the suite and reset between tests.
var (
	cacheRedis = &mRedis.Service{}
	cacheVals  = map[string][]byte{}
)

func init() {
	cacheRedis.On("Get", mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, key string) []byte { return cacheVals[key] },
		func(c ctx.Ctx, key string) error {
			if _, ok := cacheVals[key]; !ok {
				return redis.ErrNotFound
			}
			return nil
		},
	)
	cacheRedis.On("TTL", mock.Anything, mock.Anything).Return(30, nil)
	cacheRedis.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(
		func(c ctx.Ctx, key string, val []byte, expire time.Duration) error {
			cacheVals[key] = val
			return nil
		},
	)
	middleware.SetupCache(cacheRedis)
}

type listingHandlerSuite struct {
	suite.Suite

	e       *echo.Echo
	account *mAccount.Usecase
	listing *mListing.Usecase
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(listingHandlerSuite))
}

func (s *listingHandlerSuite) SetupTest() {
	for k := range cacheVals {
		delete(cacheVals, k)
	}

	s.account = &mAccount.Usecase{}
	s.listing = &mListing.Usecase{}

	s.e = echo.New()
	s.e.Use(middleware.InitMiddleware().AddContext())
	New(s.e, s.account, s.listing)
}

func (s *listingHandlerSuite) TearDownTest() {
	s.account.AssertExpectations(s.T())
	s.listing.AssertExpectations(s.T())
}

func (s *listingHandlerSuite) TestGetAllServedFromCacheOnRepeat() {
	res := []*listing.Listing{
		{
			DocId:        "0x00000000000000000000000000000000000a11ce-7",
			CollectionId: domain.Address("0x00000000000000000000000000000000000a11ce"),
			Serial:       domain.Serial("7"),
			State:        listing.StateListed,
		},
	}
	s.listing.On("FindAll", mock.Anything, mock.Anything).Return(res, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)

	// second hit must be answered from the response cache, the usecase
	// expectation above only allows a single call
	req2 := httptest.NewRequest(http.MethodGet, "/listings", nil)
	rec2 := httptest.NewRecorder()
	s.e.ServeHTTP(rec2, req2)
	s.Equal(http.StatusOK, rec2.Code)
	s.Equal(rec.Body.String(), rec2.Body.String())
}

func (s *listingHandlerSuite) TestGetServedFromCacheOnRepeat() {
	id := listing.Id{
		CollectionId: domain.Address("0x00000000000000000000000000000000000a11ce"),
		Serial:       domain.Serial("7"),
	}
	res := &listing.Listing{
		DocId:        id.DocId(),
		CollectionId: id.CollectionId,
		Serial:       id.Serial,
		State:        listing.StateListed,
	}
	s.listing.On("FindOne", mock.Anything, id).Return(res, nil).Once()

	url := "/listings/0x00000000000000000000000000000000000a11ce/7"

	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal(http.StatusOK, rec.Code)

	req2 := httptest.NewRequest(http.MethodGet, url, nil)
	rec2 := httptest.NewRecorder()
	s.e.ServeHTTP(rec2, req2)
	s.Equal(http.StatusOK, rec2.Code)
	s.Equal(rec.Body.String(), rec2.Body.String())
}

func (s *listingHandlerSuite) TestFailureResponseNotCached() {
	s.listing.On("FindAll", mock.Anything, mock.Anything).
		Return(nil, domain.ErrInternalServerError).Once()
	s.listing.On("FindAll", mock.Anything, mock.Anything).
		Return([]*listing.Listing{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/listings", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.Equal(http.StatusInternalServerError, rec.Code)

	// the failure must not be replayed from the cache
	req2 := httptest.NewRequest(http.MethodGet, "/listings", nil)
	rec2 := httptest.NewRecorder()
	s.e.ServeHTTP(rec2, req2)
	s.Equal(http.StatusOK, rec2.Code)
}
