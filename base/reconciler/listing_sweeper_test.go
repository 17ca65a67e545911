package reconciler

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/backoff"
	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/listing"
	mListing "github.com/TreyKys/TogetHed-Hackathon-sub000/domain/listing/mocks"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract"
	mContract "github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract/mocks"
)

const testCollection = domain.Address("0x00000000000000000000000000000000000a11ce")

type listingSweeperSuite struct {
	suite.Suite

	listingRepo *mListing.Repo
	escrow      *mContract.EscrowContract
	sweeper     *ListingSweeper
}

func TestListingSweeperSuite(t *testing.T) {
	suite.Run(t, new(listingSweeperSuite))
}

func (s *listingSweeperSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.escrow = &mContract.EscrowContract{}
	s.sweeper = NewListingSweeper(&ListingSweeperCfg{
		ListingRepo: s.listingRepo,
		Escrow:      s.escrow,
		StaleAfter:  10 * time.Minute,
		RetryLimit:  3,
		Backoff:     backoff.NewLinear(time.Millisecond, 5*time.Millisecond),
		Interval:    time.Minute,
	})
}

func (s *listingSweeperSuite) TearDownTest() {
	s.listingRepo.AssertExpectations(s.T())
	s.escrow.AssertExpectations(s.T())
}

func staleListing(state listing.State, serial domain.Serial) *listing.Listing {
	id := listing.Id{CollectionId: testCollection, Serial: serial}
	return &listing.Listing{
		DocId:        id.DocId(),
		CollectionId: testCollection,
		Serial:       serial,
		Seller:       "0x0000000000000000000000000000000000000001",
		Price:        "5000000000",
		State:        state,
		UpdatedAt:    time.Now().Add(-time.Hour),
	}
}

func (s *listingSweeperSuite) TestSweepCatchesUpMissedFund() {
	ctx := bCtx.Background()
	l := staleListing(listing.StateListed, "7")
	buyer := domain.Address("0x0000000000000000000000000000000000000002")

	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*listing.Listing{l}, nil).Once()
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{Buyer: buyer, State: contract.ListingStateFunded}, nil)
	s.listingRepo.On("TransitState", mock.Anything, l.ToId(), listing.StateListed,
		mock.MatchedBy(func(p listing.Patchable) bool {
			return p.State != nil && *p.State == listing.StateFunded &&
				p.Buyer != nil && p.Buyer.Equals(buyer)
		})).Return(nil)

	s.NoError(s.sweeper.SweepOnce(ctx))
}

func (s *listingSweeperSuite) TestSweepSkipsRecordsMatchingChain() {
	ctx := bCtx.Background()
	l := staleListing(listing.StateListed, "7")

	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*listing.Listing{l}, nil).Once()
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{State: contract.ListingStateListed}, nil)

	s.NoError(s.sweeper.SweepOnce(ctx))
	s.listingRepo.AssertNotCalled(s.T(), "TransitState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSweeperSuite) TestSweepNeverRegressesFunded() {
	ctx := bCtx.Background()
	l := staleListing(listing.StateFunded, "7")

	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*listing.Listing{l}, nil).Once()
	// chain still reports LISTED, a FUNDED record must not move backwards
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{State: contract.ListingStateListed}, nil)

	s.NoError(s.sweeper.SweepOnce(ctx))
	s.listingRepo.AssertNotCalled(s.T(), "TransitState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSweeperSuite) TestSweepToleratesLosingTheGuard() {
	ctx := bCtx.Background()
	l := staleListing(listing.StateListed, "7")

	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*listing.Listing{l}, nil).Once()
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{State: contract.ListingStateCanceled}, nil)
	s.listingRepo.On("TransitState", mock.Anything, l.ToId(), listing.StateListed, mock.Anything).
		Return(domain.ErrConcurrentModification)

	// a concurrent writer advancing the record first is not an error
	s.NoError(s.sweeper.SweepOnce(ctx))
}

func (s *listingSweeperSuite) TestSweepRetriesChainReads() {
	ctx := bCtx.Background()
	l := staleListing(listing.StateListed, "7")

	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*listing.Listing{l}, nil).Once()
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(nil, xerrors.New("rpc timeout")).Twice()
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{State: contract.ListingStateSold}, nil).Once()
	s.listingRepo.On("TransitState", mock.Anything, l.ToId(), listing.StateListed,
		mock.MatchedBy(func(p listing.Patchable) bool {
			return p.State != nil && *p.State == listing.StateSold
		})).Return(nil)

	s.NoError(s.sweeper.SweepOnce(ctx))
}

func (s *listingSweeperSuite) TestSweepLeavesUnreadableRecordsForNextPass() {
	ctx := bCtx.Background()
	l := staleListing(listing.StateListed, "7")

	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]*listing.Listing{l}, nil).Once()
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Once()
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(nil, xerrors.New("rpc down")).Times(3)

	s.NoError(s.sweeper.SweepOnce(ctx))
	s.listingRepo.AssertNotCalled(s.T(), "TransitState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSweeperSuite) offsetIs(want int32) interface{} {
	return mock.MatchedBy(func(opt listing.FindAllOptionsFunc) bool {
		o := listing.FindAllOptions{}
		if opt(&o) != nil {
			return false
		}
		return o.Offset != nil && *o.Offset == want
	})
}

func (s *listingSweeperSuite) TestSweepDoesNotAdvancePastTransitionedPage() {
	ctx := bCtx.Background()

	page := make([]*listing.Listing, 0, 100)
	for n := 1; n <= 100; n++ {
		page = append(page, staleListing(listing.StateListed, domain.Serial(strconv.Itoa(n))))
	}
	rest := []*listing.Listing{staleListing(listing.StateListed, "999")}

	// the whole first page transitions away, so the records behind it slide
	// into the window and the second read must keep offset 0
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, s.offsetIs(0)).
		Return(page, nil).Once()
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, s.offsetIs(0)).
		Return(rest, nil).Once()
	s.escrow.On("GetListing", mock.Anything, mock.Anything).
		Return(&contract.OnChainListing{State: contract.ListingStateSold}, nil)
	s.listingRepo.On("TransitState", mock.Anything, mock.Anything, listing.StateListed, mock.Anything).
		Return(nil)

	s.NoError(s.sweeper.sweepState(ctx, listing.StateListed))
}

func (s *listingSweeperSuite) TestSweepAdvancesPastRecordsLeftInPlace() {
	ctx := bCtx.Background()

	page := make([]*listing.Listing, 0, 100)
	for n := 1; n <= 100; n++ {
		page = append(page, staleListing(listing.StateListed, domain.Serial(strconv.Itoa(n))))
	}

	// nothing moves, the window must advance by the full page
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, s.offsetIs(0)).
		Return(page, nil).Once()
	s.listingRepo.On("FindAll", mock.Anything, mock.Anything, mock.Anything, s.offsetIs(100)).
		Return(nil, nil).Once()
	s.escrow.On("GetListing", mock.Anything, mock.Anything).
		Return(&contract.OnChainListing{State: contract.ListingStateListed}, nil)

	s.NoError(s.sweeper.sweepState(ctx, listing.StateListed))
	s.listingRepo.AssertNotCalled(s.T(), "TransitState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
