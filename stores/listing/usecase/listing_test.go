package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/units"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/fulfillment"
	mFulfillment "github.com/TreyKys/TogetHed-Hackathon-sub000/domain/fulfillment/mocks"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/listing"
	mListing "github.com/TreyKys/TogetHed-Hackathon-sub000/domain/listing/mocks"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract"
	mContract "github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract/mocks"
	mQuery "github.com/TreyKys/TogetHed-Hackathon-sub000/service/query/mocks"
)

const (
	testCollection    = domain.Address("0x00000000000000000000000000000000000a11ce")
	testEscrowAddress = domain.Address("0x0000000000000000000000000000000000e5c407")
	testSeller        = domain.Address("0x0000000000000000000000000000000000000001")
	testBuyer         = domain.Address("0x0000000000000000000000000000000000000002")
)

type listingSuite struct {
	suite.Suite

	listingRepo     *mListing.Repo
	fulfillmentRepo *mFulfillment.Repo
	escrow          *mContract.EscrowContract
	assetToken      *mContract.AssetTokenContract
	query           *mQuery.Mongo
	im              *listingUseCaseImpl
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.listingRepo = &mListing.Repo{}
	s.fulfillmentRepo = &mFulfillment.Repo{}
	s.escrow = &mContract.EscrowContract{}
	s.assetToken = &mContract.AssetTokenContract{}
	s.query = &mQuery.Mongo{}
	s.im = New(&ListingUseCaseCfg{
		ListingRepo:     s.listingRepo,
		FulfillmentRepo: s.fulfillmentRepo,
		Escrow:          s.escrow,
		AssetToken:      s.assetToken,
		EscrowAddress:   testEscrowAddress,
		Query:           s.query,
	}).(*listingUseCaseImpl)
}

func (s *listingSuite) TearDownTest() {
	s.listingRepo.AssertExpectations(s.T())
	s.fulfillmentRepo.AssertExpectations(s.T())
	s.escrow.AssertExpectations(s.T())
	s.assetToken.AssertExpectations(s.T())
	s.query.AssertExpectations(s.T())
}

func sellerSession() *account.Session {
	return &account.Session{Address: testSeller}
}

func buyerSession() *account.Session {
	return &account.Session{Address: testBuyer}
}

func listedRecord() *listing.Listing {
	id := listing.Id{CollectionId: testCollection, Serial: "7"}
	return &listing.Listing{
		DocId:        id.DocId(),
		CollectionId: testCollection,
		Serial:       "7",
		Seller:       testSeller,
		Price:        "5000000000",
		State:        listing.StateListed,
		ListTx:       "0xaaa",
	}
}

func (s *listingSuite) TestList() {
	ctx := bCtx.Background()
	in := listing.ListInput{
		CollectionId: testCollection,
		Serial:       "007",
		PriceHuman:   "50",
		Category:     "real-estate",
		Name:         "warehouse 7",
	}

	s.assetToken.On("Approve", mock.Anything, mock.Anything, testEscrowAddress, domain.Serial("7")).
		Return(&domain.Receipt{TxHash: "0x111"}, nil)
	s.escrow.On("ListAsset", mock.Anything, mock.Anything, domain.Serial("7"), mock.Anything).
		Return(&domain.Receipt{TxHash: "0x222"}, nil)
	s.listingRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	rec, err := s.im.List(ctx, sellerSession(), in)
	s.NoError(err)
	s.Equal(domain.Serial("7"), rec.Serial)
	s.Equal(listing.StateListed, rec.State)
	s.Equal(testSeller, rec.Seller)
	s.Equal(domain.TxHash("0x222"), rec.ListTx)
	s.Equal("5000000000", rec.Price.String())
	s.Equal(string(testCollection)+"-7", rec.DocId)
}

func (s *listingSuite) TestListAllowanceFailure() {
	ctx := bCtx.Background()
	in := listing.ListInput{CollectionId: testCollection, Serial: "7", PriceHuman: "50"}

	s.assetToken.On("Approve", mock.Anything, mock.Anything, testEscrowAddress, domain.Serial("7")).
		Return(nil, xerrors.New("reverted"))

	_, err := s.im.List(ctx, sellerSession(), in)
	s.ErrorIs(err, domain.ErrAllowanceFailed)
	s.escrow.AssertNotCalled(s.T(), "ListAsset", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.listingRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestListChainFailureLeavesNoRecord() {
	ctx := bCtx.Background()
	in := listing.ListInput{CollectionId: testCollection, Serial: "7", PriceHuman: "50"}

	s.assetToken.On("Approve", mock.Anything, mock.Anything, testEscrowAddress, domain.Serial("7")).
		Return(&domain.Receipt{TxHash: "0x111"}, nil)
	s.escrow.On("ListAsset", mock.Anything, mock.Anything, domain.Serial("7"), mock.Anything).
		Return(nil, domain.ErrChainRejected)

	_, err := s.im.List(ctx, sellerSession(), in)
	s.ErrorIs(err, domain.ErrChainRejected)
	s.listingRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestListRejectsBadInput() {
	ctx := bCtx.Background()

	_, err := s.im.List(ctx, sellerSession(), listing.ListInput{CollectionId: testCollection, Serial: "-1", PriceHuman: "50"})
	s.ErrorIs(err, domain.ErrInvalidSerial)

	_, err = s.im.List(ctx, sellerSession(), listing.ListInput{CollectionId: testCollection, Serial: "7", PriceHuman: "0"})
	s.ErrorIs(err, domain.ErrInvalidAmount)

	_, err = s.im.List(ctx, sellerSession(), listing.ListInput{CollectionId: testCollection, Serial: "7", PriceHuman: "0.123456789"})
	s.ErrorIs(err, domain.ErrPrecisionLoss)

	_, err = s.im.List(ctx, nil, listing.ListInput{CollectionId: testCollection, Serial: "7", PriceHuman: "50"})
	s.ErrorIs(err, domain.ErrBadParamInput)

	s.assetToken.AssertNotCalled(s.T(), "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestFund() {
	ctx := bCtx.Background()
	id := listing.Id{CollectionId: testCollection, Serial: "7"}
	rec := listedRecord()

	s.listingRepo.On("FindOne", mock.Anything, id).Return(rec, nil)
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{Seller: testSeller, Price: "5000000000", State: contract.ListingStateListed}, nil).Once()
	// the price widens from 8 to 18 decimals for the payable call
	s.escrow.On("FundEscrow", mock.Anything, mock.Anything, domain.Serial("7"), mock.MatchedBy(func(w units.Weibar) bool {
		return w == "50000000000000000000"
	})).Return(&domain.Receipt{TxHash: "0x333"}, nil)
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{Seller: testSeller, Buyer: testBuyer, Price: "5000000000", State: contract.ListingStateFunded}, nil).Once()
	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) })
	s.listingRepo.On("TransitState", mock.Anything, id, listing.StateListed, mock.MatchedBy(func(p listing.Patchable) bool {
		return p.State != nil && *p.State == listing.StateFunded &&
			p.Buyer != nil && p.Buyer.Equals(testBuyer) &&
			p.FundTx != nil && *p.FundTx == "0x333"
	})).Return(nil)
	s.fulfillmentRepo.On("Create", mock.Anything, mock.MatchedBy(func(t *fulfillment.Task) bool {
		return t.ListingDocId == id.DocId() && t.Status == fulfillment.StatusPending && t.FundTx == "0x333"
	})).Return(nil)

	receipt, err := s.im.Fund(ctx, buyerSession(), id)
	s.NoError(err)
	s.Equal(domain.TxHash("0x333"), receipt.TxHash)
}

func (s *listingSuite) TestFundStaleChainState() {
	ctx := bCtx.Background()
	id := listing.Id{CollectionId: testCollection, Serial: "7"}

	s.listingRepo.On("FindOne", mock.Anything, id).Return(listedRecord(), nil)
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{State: contract.ListingStateCanceled}, nil)

	_, err := s.im.Fund(ctx, buyerSession(), id)
	s.ErrorIs(err, domain.ErrNotListed)
	s.escrow.AssertNotCalled(s.T(), "FundEscrow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestFundSellerCannotBuyOwnListing() {
	ctx := bCtx.Background()
	id := listing.Id{CollectionId: testCollection, Serial: "7"}

	s.listingRepo.On("FindOne", mock.Anything, id).Return(listedRecord(), nil)

	_, err := s.im.Fund(ctx, sellerSession(), id)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *listingSuite) TestFundGuardedTransitionLoses() {
	ctx := bCtx.Background()
	id := listing.Id{CollectionId: testCollection, Serial: "7"}

	s.listingRepo.On("FindOne", mock.Anything, id).Return(listedRecord(), nil)
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{State: contract.ListingStateListed}, nil).Once()
	s.escrow.On("FundEscrow", mock.Anything, mock.Anything, domain.Serial("7"), mock.Anything).
		Return(&domain.Receipt{TxHash: "0x333"}, nil)
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{Buyer: testBuyer, State: contract.ListingStateFunded}, nil).Once()
	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) })
	s.listingRepo.On("TransitState", mock.Anything, id, listing.StateListed, mock.Anything).
		Return(domain.ErrConcurrentModification)

	_, err := s.im.Fund(ctx, buyerSession(), id)
	s.ErrorIs(err, domain.ErrConcurrentModification)
	s.fulfillmentRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *listingSuite) TestFundSettlementMismatch() {
	ctx := bCtx.Background()
	id := listing.Id{CollectionId: testCollection, Serial: "7"}

	s.listingRepo.On("FindOne", mock.Anything, id).Return(listedRecord(), nil)
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{State: contract.ListingStateListed}, nil).Once()
	s.escrow.On("FundEscrow", mock.Anything, mock.Anything, domain.Serial("7"), mock.Anything).
		Return(&domain.Receipt{TxHash: "0x333"}, nil)
	s.escrow.On("GetListing", mock.Anything, domain.Serial("7")).
		Return(&contract.OnChainListing{State: contract.ListingStateListed}, nil).Once()

	_, err := s.im.Fund(ctx, buyerSession(), id)
	s.ErrorIs(err, domain.ErrSettlementMismatch)
	s.listingRepo.AssertNotCalled(s.T(), "TransitState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestConfirmDelivery() {
	ctx := bCtx.Background()
	id := listing.Id{CollectionId: testCollection, Serial: "7"}
	buyer := testBuyer
	rec := listedRecord()
	rec.State = listing.StateFunded
	rec.Buyer = &buyer

	s.listingRepo.On("FindOne", mock.Anything, id).Return(rec, nil)
	s.escrow.On("ConfirmDelivery", mock.Anything, mock.Anything, domain.Serial("7")).
		Return(&domain.Receipt{TxHash: "0x444"}, nil)
	s.query.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c bCtx.Ctx, run func(bCtx.Ctx) error) error { return run(c) })
	s.listingRepo.On("TransitState", mock.Anything, id, listing.StateFunded, mock.MatchedBy(func(p listing.Patchable) bool {
		return p.State != nil && *p.State == listing.StateSold && p.SettleTx != nil && *p.SettleTx == "0x444"
	})).Return(nil)
	s.fulfillmentRepo.On("UpdateByListing", mock.Anything, id.DocId(), mock.MatchedBy(func(p fulfillment.Patchable) bool {
		return p.Status != nil && *p.Status == fulfillment.StatusDelivered
	})).Return(nil)

	receipt, err := s.im.ConfirmDelivery(ctx, buyerSession(), id)
	s.NoError(err)
	s.Equal(domain.TxHash("0x444"), receipt.TxHash)
}

func (s *listingSuite) TestConfirmDeliveryGuards() {
	ctx := bCtx.Background()
	id := listing.Id{CollectionId: testCollection, Serial: "7"}

	// still LISTED, nothing to confirm
	s.listingRepo.On("FindOne", mock.Anything, id).Return(listedRecord(), nil).Once()
	_, err := s.im.ConfirmDelivery(ctx, buyerSession(), id)
	s.ErrorIs(err, domain.ErrInvalidStateTransition)

	// only the funding buyer may confirm
	buyer := testBuyer
	rec := listedRecord()
	rec.State = listing.StateFunded
	rec.Buyer = &buyer
	s.listingRepo.On("FindOne", mock.Anything, id).Return(rec, nil).Once()
	_, err = s.im.ConfirmDelivery(ctx, sellerSession(), id)
	s.ErrorIs(err, domain.ErrBadParamInput)

	s.escrow.AssertNotCalled(s.T(), "ConfirmDelivery", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingSuite) TestCancel() {
	ctx := bCtx.Background()
	id := listing.Id{CollectionId: testCollection, Serial: "7"}

	s.listingRepo.On("FindOne", mock.Anything, id).Return(listedRecord(), nil)
	s.escrow.On("CancelListing", mock.Anything, mock.Anything, domain.Serial("7")).
		Return(&domain.Receipt{TxHash: "0x555"}, nil)
	s.listingRepo.On("TransitState", mock.Anything, id, listing.StateListed, mock.MatchedBy(func(p listing.Patchable) bool {
		return p.State != nil && *p.State == listing.StateCanceled && p.CancelTx != nil && *p.CancelTx == "0x555"
	})).Return(nil)

	receipt, err := s.im.Cancel(ctx, sellerSession(), id)
	s.NoError(err)
	s.Equal(domain.TxHash("0x555"), receipt.TxHash)
}

func (s *listingSuite) TestCancelGuards() {
	ctx := bCtx.Background()
	id := listing.Id{CollectionId: testCollection, Serial: "7"}

	s.listingRepo.On("FindOne", mock.Anything, id).Return(listedRecord(), nil).Once()
	_, err := s.im.Cancel(ctx, buyerSession(), id)
	s.ErrorIs(err, domain.ErrBadParamInput)

	sold := listedRecord()
	sold.State = listing.StateSold
	s.listingRepo.On("FindOne", mock.Anything, id).Return(sold, nil).Once()
	_, err = s.im.Cancel(ctx, sellerSession(), id)
	s.ErrorIs(err, domain.ErrInvalidStateTransition)

	s.escrow.AssertNotCalled(s.T(), "CancelListing", mock.Anything, mock.Anything, mock.Anything)
}
