package contract

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/units"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	mChain "github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/mocks"
)

const testContractAddress = "0x00000000000000000000000000000000000000C0"

func bigIntEq(want int64) func(*big.Int) bool {
	return func(got *big.Int) bool {
		return got != nil && got.Cmp(big.NewInt(want)) == 0
	}
}

type contractSuite struct {
	suite.Suite

	chain   *mChain.Client
	session *account.Session
}

func TestContractSuite(t *testing.T) {
	suite.Run(t, new(contractSuite))
}

func (s *contractSuite) SetupTest() {
	s.chain = &mChain.Client{}
	s.session = &account.Session{Address: "0x0000000000000000000000000000000000000001"}
}

func (s *contractSuite) TearDownTest() {
	s.chain.AssertExpectations(s.T())
}

func (s *contractSuite) TestEscrowListAsset() {
	ctx := bCtx.Background()
	escrow := NewEscrow(s.chain, testContractAddress)

	s.chain.On("Transact", mock.Anything, s.session, escrow.address, mock.Anything, "listAsset",
		mock.MatchedBy(bigIntEq(7)), mock.MatchedBy(bigIntEq(5000000000))).
		Return(&domain.Receipt{TxHash: "0x111"}, nil)

	receipt, err := escrow.ListAsset(ctx, s.session, "7", "5000000000")
	s.NoError(err)
	s.Equal(domain.TxHash("0x111"), receipt.TxHash)
}

func (s *contractSuite) TestEscrowListAssetRejectsBadPrice() {
	ctx := bCtx.Background()
	escrow := NewEscrow(s.chain, testContractAddress)

	_, err := escrow.ListAsset(ctx, s.session, "7", "0")
	s.ErrorIs(err, domain.ErrInvalidAmount)
	s.chain.AssertNotCalled(s.T(), "Transact",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *contractSuite) TestEscrowFundCarriesValue() {
	ctx := bCtx.Background()
	escrow := NewEscrow(s.chain, testContractAddress)

	s.chain.On("TransactWithValue", mock.Anything, s.session, escrow.address,
		units.Weibar("50000000000000000000"), mock.Anything, "fundEscrow", mock.MatchedBy(bigIntEq(7))).
		Return(&domain.Receipt{TxHash: "0x222"}, nil)

	_, err := escrow.FundEscrow(ctx, s.session, "7", "50000000000000000000")
	s.NoError(err)
}

func (s *contractSuite) TestEscrowGetListing() {
	ctx := bCtx.Background()
	escrow := NewEscrow(s.chain, testContractAddress)

	seller := common.HexToAddress("0x0000000000000000000000000000000000000001")
	buyer := common.HexToAddress("0x0000000000000000000000000000000000000002")
	s.chain.On("Call", mock.Anything, escrow.address, (*big.Int)(nil), mock.Anything, "getListing",
		mock.MatchedBy(bigIntEq(7))).
		Return([]interface{}{seller, buyer, big.NewInt(5000000000), uint8(1)}, nil)

	onchain, err := escrow.GetListing(ctx, "7")
	s.NoError(err)
	s.Equal(domain.Address("0x0000000000000000000000000000000000000001"), onchain.Seller)
	s.Equal(domain.Address("0x0000000000000000000000000000000000000002"), onchain.Buyer)
	s.Equal(units.Tinybar("5000000000"), onchain.Price)
	s.Equal(ListingStateFunded, onchain.State)
}

func (s *contractSuite) TestEscrowGetListingMalformedTuple() {
	ctx := bCtx.Background()
	escrow := NewEscrow(s.chain, testContractAddress)

	s.chain.On("Call", mock.Anything, escrow.address, (*big.Int)(nil), mock.Anything, "getListing",
		mock.MatchedBy(bigIntEq(7))).
		Return([]interface{}{big.NewInt(1)}, nil)

	_, err := escrow.GetListing(ctx, "7")
	s.ErrorIs(err, domain.ErrInvalidNumberFormat)
}

func (s *contractSuite) TestLendingPoolTakeLoan() {
	ctx := bCtx.Background()
	pool := NewLendingPool(s.chain, testContractAddress)

	s.chain.On("Transact", mock.Anything, s.session, pool.address, mock.Anything, "takeLoan",
		mock.MatchedBy(bigIntEq(9)), mock.MatchedBy(bigIntEq(10000000000)),
		mock.MatchedBy(bigIntEq(500000000)), mock.MatchedBy(bigIntEq(3600))).
		Return(&domain.Receipt{TxHash: "0x333"}, nil)

	_, err := pool.TakeLoan(ctx, s.session, "9", "10000000000", "500000000", 3600)
	s.NoError(err)
}

func (s *contractSuite) TestLendingPoolRepayCarriesValue() {
	ctx := bCtx.Background()
	pool := NewLendingPool(s.chain, testContractAddress)

	s.chain.On("TransactWithValue", mock.Anything, s.session, pool.address,
		units.Weibar("105000000000000000000"), mock.Anything, "repayLoan", mock.MatchedBy(bigIntEq(9))).
		Return(&domain.Receipt{TxHash: "0x444"}, nil)

	_, err := pool.RepayLoan(ctx, s.session, "9", "105000000000000000000")
	s.NoError(err)
}

func (s *contractSuite) TestLendingPoolGetLoan() {
	ctx := bCtx.Background()
	pool := NewLendingPool(s.chain, testContractAddress)

	borrower := common.HexToAddress("0x0000000000000000000000000000000000000003")
	s.chain.On("Call", mock.Anything, pool.address, (*big.Int)(nil), mock.Anything, "getLoan",
		mock.MatchedBy(bigIntEq(9))).
		Return([]interface{}{borrower, big.NewInt(10000000000), big.NewInt(500000000), big.NewInt(1700000000), uint8(2)}, nil)

	onchain, err := pool.GetLoan(ctx, "9")
	s.NoError(err)
	s.Equal(domain.Address("0x0000000000000000000000000000000000000003"), onchain.Borrower)
	s.Equal(units.Tinybar("10000000000"), onchain.Principal)
	s.Equal(units.Tinybar("500000000"), onchain.Interest)
	s.Equal(LoanStateRepaid, onchain.State)
}

func (s *contractSuite) TestAssetTokenApprove() {
	ctx := bCtx.Background()
	token := NewAssetToken(s.chain, testContractAddress)
	operator := domain.Address("0x00000000000000000000000000000000000000C0")

	s.chain.On("Transact", mock.Anything, s.session, token.address, mock.Anything, "approve",
		common.HexToAddress(string(operator)), mock.MatchedBy(bigIntEq(7))).
		Return(&domain.Receipt{TxHash: "0x555"}, nil)

	_, err := token.Approve(ctx, s.session, operator, "7")
	s.NoError(err)
}

func (s *contractSuite) TestAssetTokenOwnerOf() {
	ctx := bCtx.Background()
	token := NewAssetToken(s.chain, testContractAddress)

	owner := common.HexToAddress("0x0000000000000000000000000000000000000001")
	s.chain.On("Call", mock.Anything, token.address, (*big.Int)(nil), mock.Anything, "ownerOf",
		mock.MatchedBy(bigIntEq(7))).
		Return([]interface{}{owner}, nil)

	got, err := token.OwnerOf(ctx, "7")
	s.NoError(err)
	s.Equal(domain.Address("0x0000000000000000000000000000000000000001"), got)
}
