package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/units"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/loan"
	mLoan "github.com/TreyKys/TogetHed-Hackathon-sub000/domain/loan/mocks"
	mContract "github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract/mocks"
)

const (
	testPoolAddress = domain.Address("0x0000000000000000000000000000000000900190")
	testBorrower    = domain.Address("0x0000000000000000000000000000000000000003")
	testAdmin       = domain.Address("0x00000000000000000000000000000000000000ad")
)

type loanSuite struct {
	suite.Suite

	loanRepo    *mLoan.Repo
	lendingPool *mContract.LendingPoolContract
	assetToken  *mContract.AssetTokenContract
	im          *loanUseCaseImpl
}

func TestLoanSuite(t *testing.T) {
	suite.Run(t, new(loanSuite))
}

func (s *loanSuite) SetupTest() {
	s.loanRepo = &mLoan.Repo{}
	s.lendingPool = &mContract.LendingPoolContract{}
	s.assetToken = &mContract.AssetTokenContract{}
	s.im = New(&LoanUseCaseCfg{
		LoanRepo:    s.loanRepo,
		LendingPool: s.lendingPool,
		AssetToken:  s.assetToken,
		PoolAddress: testPoolAddress,
		Admin:       testAdmin,
	}).(*loanUseCaseImpl)
}

func (s *loanSuite) TearDownTest() {
	s.loanRepo.AssertExpectations(s.T())
	s.lendingPool.AssertExpectations(s.T())
	s.assetToken.AssertExpectations(s.T())
}

func borrowerSession() *account.Session {
	return &account.Session{Address: testBorrower}
}

func adminSession() *account.Session {
	return &account.Session{Address: testAdmin}
}

func activeLoan() *loan.Loan {
	id := loan.Id{Borrower: testBorrower, Serial: "9"}
	return &loan.Loan{
		DocId:     id.DocId(),
		Borrower:  testBorrower,
		Serial:    "9",
		Principal: "10000000000",
		Interest:  "500000000",
		DueTime:   time.Now().Add(time.Hour),
		State:     loan.StateActive,
		IssueTx:   "0xaaa",
	}
}

func (s *loanSuite) TestTake() {
	ctx := bCtx.Background()
	in := loan.TakeInput{
		Serial:          "9",
		PrincipalHuman:  "100",
		InterestHuman:   "5",
		DurationSeconds: 3600,
	}
	id := loan.Id{Borrower: testBorrower, Serial: "9"}

	s.loanRepo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound)
	s.assetToken.On("Approve", mock.Anything, mock.Anything, testPoolAddress, domain.Serial("9")).
		Return(&domain.Receipt{TxHash: "0x111"}, nil)
	s.lendingPool.On("TakeLoan", mock.Anything, mock.Anything, domain.Serial("9"),
		units.Tinybar("10000000000"), units.Tinybar("500000000"), int64(3600)).
		Return(&domain.Receipt{TxHash: "0x222"}, nil)
	s.loanRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *loan.Loan) bool {
		return l.DocId == id.DocId() && l.State == loan.StateActive && l.IssueTx == "0x222"
	})).Return(nil)

	before := time.Now()
	rec, err := s.im.Take(ctx, borrowerSession(), in)
	s.NoError(err)
	s.Equal(units.Tinybar("10000000000"), rec.Principal)
	s.Equal(units.Tinybar("500000000"), rec.Interest)
	// due time is anchored at issuance, not at request parse time
	s.WithinDuration(before.Add(time.Hour), rec.DueTime, 5*time.Second)
}

func (s *loanSuite) TestTakeAllowanceFailureIsDistinct() {
	ctx := bCtx.Background()
	in := loan.TakeInput{Serial: "9", PrincipalHuman: "100", InterestHuman: "5", DurationSeconds: 3600}
	id := loan.Id{Borrower: testBorrower, Serial: "9"}

	s.loanRepo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound)
	s.assetToken.On("Approve", mock.Anything, mock.Anything, testPoolAddress, domain.Serial("9")).
		Return(nil, xerrors.New("reverted"))

	_, err := s.im.Take(ctx, borrowerSession(), in)
	s.ErrorIs(err, domain.ErrAllowanceFailed)
	s.lendingPool.AssertNotCalled(s.T(), "TakeLoan",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *loanSuite) TestTakeIssuanceFailureLeavesNoRecord() {
	ctx := bCtx.Background()
	in := loan.TakeInput{Serial: "9", PrincipalHuman: "100", InterestHuman: "5", DurationSeconds: 3600}
	id := loan.Id{Borrower: testBorrower, Serial: "9"}

	s.loanRepo.On("FindOne", mock.Anything, id).Return(nil, domain.ErrNotFound)
	s.assetToken.On("Approve", mock.Anything, mock.Anything, testPoolAddress, domain.Serial("9")).
		Return(&domain.Receipt{TxHash: "0x111"}, nil)
	s.lendingPool.On("TakeLoan", mock.Anything, mock.Anything, domain.Serial("9"),
		units.Tinybar("10000000000"), units.Tinybar("500000000"), int64(3600)).
		Return(nil, domain.ErrChainRejected)

	_, err := s.im.Take(ctx, borrowerSession(), in)
	s.ErrorIs(err, domain.ErrChainRejected)
	s.NotErrorIs(err, domain.ErrAllowanceFailed)
	s.loanRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *loanSuite) TestTakeRejectsActiveDuplicate() {
	ctx := bCtx.Background()
	in := loan.TakeInput{Serial: "9", PrincipalHuman: "100", InterestHuman: "5", DurationSeconds: 3600}
	id := loan.Id{Borrower: testBorrower, Serial: "9"}

	s.loanRepo.On("FindOne", mock.Anything, id).Return(activeLoan(), nil)

	_, err := s.im.Take(ctx, borrowerSession(), in)
	s.ErrorIs(err, domain.ErrConflict)
	s.assetToken.AssertNotCalled(s.T(), "Approve", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *loanSuite) TestTakeRejectsBadInput() {
	ctx := bCtx.Background()

	_, err := s.im.Take(ctx, borrowerSession(), loan.TakeInput{Serial: "9", PrincipalHuman: "0", InterestHuman: "5", DurationSeconds: 3600})
	s.ErrorIs(err, domain.ErrInvalidAmount)

	_, err = s.im.Take(ctx, borrowerSession(), loan.TakeInput{Serial: "9", PrincipalHuman: "100", InterestHuman: "5", DurationSeconds: 0})
	s.ErrorIs(err, domain.ErrBadParamInput)

	_, err = s.im.Take(ctx, nil, loan.TakeInput{Serial: "9", PrincipalHuman: "100", InterestHuman: "5", DurationSeconds: 3600})
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *loanSuite) TestRepay() {
	ctx := bCtx.Background()
	id := loan.Id{Borrower: testBorrower, Serial: "9"}

	s.loanRepo.On("FindOne", mock.Anything, id).Return(activeLoan(), nil)
	// value is principal+interest widened to 18 decimals, regardless of the
	// caller's amount
	s.lendingPool.On("RepayLoan", mock.Anything, mock.Anything, domain.Serial("9"),
		units.Weibar("105000000000000000000")).
		Return(&domain.Receipt{TxHash: "0x333"}, nil)
	s.loanRepo.On("TransitState", mock.Anything, id, loan.StateActive, mock.MatchedBy(func(p loan.Patchable) bool {
		return p.State != nil && *p.State == loan.StateRepaid && p.RepayTx != nil && *p.RepayTx == "0x333"
	})).Return(nil)

	receipt, err := s.im.Repay(ctx, borrowerSession(), "9", "105")
	s.NoError(err)
	s.Equal(domain.TxHash("0x333"), receipt.TxHash)
}

func (s *loanSuite) TestRepayGuards() {
	ctx := bCtx.Background()
	id := loan.Id{Borrower: testBorrower, Serial: "9"}

	repaid := activeLoan()
	repaid.State = loan.StateRepaid
	s.loanRepo.On("FindOne", mock.Anything, id).Return(repaid, nil).Once()
	_, err := s.im.Repay(ctx, borrowerSession(), "9", "105")
	s.ErrorIs(err, domain.ErrInvalidStateTransition)

	_, err = s.im.Repay(ctx, borrowerSession(), "9", "not-a-number")
	s.ErrorIs(err, domain.ErrInvalidAmount)

	s.lendingPool.AssertNotCalled(s.T(), "RepayLoan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *loanSuite) TestRepayGuardedTransitionLoses() {
	ctx := bCtx.Background()
	id := loan.Id{Borrower: testBorrower, Serial: "9"}

	s.loanRepo.On("FindOne", mock.Anything, id).Return(activeLoan(), nil)
	s.lendingPool.On("RepayLoan", mock.Anything, mock.Anything, domain.Serial("9"), mock.Anything).
		Return(&domain.Receipt{TxHash: "0x333"}, nil)
	s.loanRepo.On("TransitState", mock.Anything, id, loan.StateActive, mock.Anything).
		Return(domain.ErrConcurrentModification)

	_, err := s.im.Repay(ctx, borrowerSession(), "9", "105")
	s.ErrorIs(err, domain.ErrConcurrentModification)
}

func (s *loanSuite) TestLiquidate() {
	ctx := bCtx.Background()
	destination := domain.Address("0x00000000000000000000000000000000000000fe")

	s.lendingPool.On("Liquidate", mock.Anything, mock.Anything, domain.Serial("9"), destination).
		Return(&domain.Receipt{TxHash: "0x444"}, nil)
	s.loanRepo.On("TransitAllBySerial", mock.Anything, domain.Serial("9"), loan.StateActive,
		mock.MatchedBy(func(p loan.Patchable) bool {
			return p.State != nil && *p.State == loan.StateLiquidated &&
				p.LiquidateTx != nil && *p.LiquidateTx == "0x444"
		})).Return(int64(1), nil)

	receipt, err := s.im.Liquidate(ctx, adminSession(), "9", destination)
	s.NoError(err)
	s.Equal(domain.TxHash("0x444"), receipt.TxHash)
}

func (s *loanSuite) TestLiquidateRequiresAdmin() {
	ctx := bCtx.Background()

	_, err := s.im.Liquidate(ctx, borrowerSession(), "9", testAdmin)
	s.ErrorIs(err, domain.ErrBadParamInput)

	_, err = s.im.Liquidate(ctx, nil, "9", testAdmin)
	s.ErrorIs(err, domain.ErrBadParamInput)

	s.lendingPool.AssertNotCalled(s.T(), "Liquidate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *loanSuite) TestDepositLiquidity() {
	ctx := bCtx.Background()

	s.lendingPool.On("DepositLiquidity", mock.Anything, mock.Anything, units.Weibar("1000000000000000000000")).
		Return(&domain.Receipt{TxHash: "0x555"}, nil)

	receipt, err := s.im.DepositLiquidity(ctx, adminSession(), "1000")
	s.NoError(err)
	s.Equal(domain.TxHash("0x555"), receipt.TxHash)

	// pool funding never touches loan records
	s.loanRepo.AssertNotCalled(s.T(), "TransitState", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.loanRepo.AssertNotCalled(s.T(), "TransitAllBySerial", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	s.loanRepo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *loanSuite) TestDepositLiquidityRequiresAdmin() {
	ctx := bCtx.Background()

	_, err := s.im.DepositLiquidity(ctx, borrowerSession(), "1000")
	s.ErrorIs(err, domain.ErrBadParamInput)

	s.lendingPool.AssertNotCalled(s.T(), "DepositLiquidity", mock.Anything, mock.Anything, mock.Anything)
}
