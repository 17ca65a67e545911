package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/TreyKys/TogetHed-Hackathon-sub000/base/abi"
	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/units"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain"
)

// LoanState mirrors the lending pool contract's loan state enum.
type LoanState uint8

const (
	LoanStateNone       LoanState = 0
	LoanStateActive     LoanState = 1
	LoanStateRepaid     LoanState = 2
	LoanStateLiquidated LoanState = 3
)

type OnChainLoan struct {
	Borrower  domain.Address
	Principal units.Tinybar
	Interest  units.Tinybar
	DueTime   *big.Int
	State     LoanState
}

type LendingPoolContract interface {
	// TakeLoan issues a loan against the serial. Principal and interest are
	// 8-decimal contract parameters; the prior collateral allowance must
	// already be in place.
	TakeLoan(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, principal, interest units.Tinybar, durationSeconds int64) (*domain.Receipt, error)
	// RepayLoan carries the repayment as the transaction value, 18-decimal.
	RepayLoan(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, value units.Weibar) (*domain.Receipt, error)
	Liquidate(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, destination domain.Address) (*domain.Receipt, error)
	DepositLiquidity(ctx bCtx.Ctx, session *account.Session, value units.Weibar) (*domain.Receipt, error)
	GetLoan(ctx bCtx.Ctx, serial domain.Serial) (*OnChainLoan, error)
}

type LendingPool struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewLendingPool(chainService chain.Client, address string) *LendingPool {
	return &LendingPool{
		chainService: chainService,
		abi:          baseabi.LendingPoolABI,
		address:      common.HexToAddress(address),
	}
}

// Address is what the collateral allowance has to be granted to.
func (l *LendingPool) Address() domain.Address {
	return domain.Address(l.address.Hex()).ToLower()
}

func (l *LendingPool) TakeLoan(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, principal, interest units.Tinybar, durationSeconds int64) (*domain.Receipt, error) {
	principalBn, err := principal.BigInt()
	if err != nil {
		return nil, err
	}
	interestBn, err := interest.BigInt()
	if err != nil {
		return nil, err
	}
	if durationSeconds <= 0 {
		return nil, domain.ErrBadParamInput
	}
	return l.chainService.Transact(ctx, session, l.address, l.abi, "takeLoan",
		serial.BigInt(), principalBn, interestBn, big.NewInt(durationSeconds))
}

func (l *LendingPool) RepayLoan(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, value units.Weibar) (*domain.Receipt, error) {
	return l.chainService.TransactWithValue(ctx, session, l.address, value, l.abi, "repayLoan", serial.BigInt())
}

func (l *LendingPool) Liquidate(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, destination domain.Address) (*domain.Receipt, error) {
	return l.chainService.Transact(ctx, session, l.address, l.abi, "liquidate",
		serial.BigInt(), common.HexToAddress(string(destination)))
}

func (l *LendingPool) DepositLiquidity(ctx bCtx.Ctx, session *account.Session, value units.Weibar) (*domain.Receipt, error) {
	return l.chainService.TransactWithValue(ctx, session, l.address, value, l.abi, "depositLiquidity")
}

func (l *LendingPool) GetLoan(ctx bCtx.Ctx, serial domain.Serial) (*OnChainLoan, error) {
	unpacked, err := l.chainService.Call(ctx, l.address, nil, l.abi, "getLoan", serial.BigInt())
	if err != nil {
		return nil, err
	}
	if len(unpacked) != 5 {
		return nil, domain.ErrInvalidNumberFormat
	}
	borrower, ok := unpacked[0].(common.Address)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	principal, ok := unpacked[1].(*big.Int)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	interest, ok := unpacked[2].(*big.Int)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	dueTime, ok := unpacked[3].(*big.Int)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	state, ok := unpacked[4].(uint8)
	if !ok {
		return nil, domain.ErrInvalidNumberFormat
	}
	return &OnChainLoan{
		Borrower:  domain.Address(borrower.Hex()).ToLower(),
		Principal: units.Tinybar(principal.String()),
		Interest:  units.Tinybar(interest.String()),
		DueTime:   dueTime,
		State:     LoanState(state),
	}, nil
}
