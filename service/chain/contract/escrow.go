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

// ListingState mirrors the escrow contract's listing state enum.
type ListingState uint8

const (
	ListingStateListed   ListingState = 0
	ListingStateFunded   ListingState = 1
	ListingStateSold     ListingState = 2
	ListingStateCanceled ListingState = 3
)

// OnChainListing is the raw listing record read back from the contract.
type OnChainListing struct {
	Seller domain.Address
	Buyer  domain.Address
	Price  units.Tinybar
	State  ListingState
}

type EscrowContract interface {
	// ListAsset offers the serial at a fixed price. Price is an 8-decimal
	// contract parameter, never the 18-decimal value denomination.
	ListAsset(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, price units.Tinybar) (*domain.Receipt, error)
	CancelListing(ctx bCtx.Ctx, session *account.Session, serial domain.Serial) (*domain.Receipt, error)
	// FundEscrow locks the buyer's payment; value must equal the listed
	// price widened to 18 decimals.
	FundEscrow(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, value units.Weibar) (*domain.Receipt, error)
	ConfirmDelivery(ctx bCtx.Ctx, session *account.Session, serial domain.Serial) (*domain.Receipt, error)
	GetListing(ctx bCtx.Ctx, serial domain.Serial) (*OnChainListing, error)
}

type Escrow struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewEscrow(chainService chain.Client, address string) *Escrow {
	return &Escrow{
		chainService: chainService,
		abi:          baseabi.EscrowABI,
		address:      common.HexToAddress(address),
	}
}

func (e *Escrow) ListAsset(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, price units.Tinybar) (*domain.Receipt, error) {
	priceBn, err := price.BigInt()
	if err != nil {
		return nil, err
	}
	return e.chainService.Transact(ctx, session, e.address, e.abi, "listAsset", serial.BigInt(), priceBn)
}

func (e *Escrow) CancelListing(ctx bCtx.Ctx, session *account.Session, serial domain.Serial) (*domain.Receipt, error) {
	return e.chainService.Transact(ctx, session, e.address, e.abi, "cancelListing", serial.BigInt())
}

func (e *Escrow) FundEscrow(ctx bCtx.Ctx, session *account.Session, serial domain.Serial, value units.Weibar) (*domain.Receipt, error) {
	return e.chainService.TransactWithValue(ctx, session, e.address, value, e.abi, "fundEscrow", serial.BigInt())
}

func (e *Escrow) ConfirmDelivery(ctx bCtx.Ctx, session *account.Session, serial domain.Serial) (*domain.Receipt, error) {
	return e.chainService.Transact(ctx, session, e.address, e.abi, "confirmDelivery", serial.BigInt())
}

func (e *Escrow) GetListing(ctx bCtx.Ctx, serial domain.Serial) (*OnChainListing, error) {
	unpacked, err := e.chainService.Call(ctx, e.address, nil, e.abi, "getListing", serial.BigInt())
	if err != nil {
		return nil, err
	}
	seller, buyer, price, state, err := unpackListing(unpacked)
	if err != nil {
		return nil, err
	}
	return &OnChainListing{
		Seller: seller,
		Buyer:  buyer,
		Price:  price,
		State:  state,
	}, nil
}

func unpackListing(unpacked []interface{}) (domain.Address, domain.Address, units.Tinybar, ListingState, error) {
	if len(unpacked) != 4 {
		return "", "", "", 0, domain.ErrInvalidNumberFormat
	}
	seller, ok := unpacked[0].(common.Address)
	if !ok {
		return "", "", "", 0, domain.ErrInvalidNumberFormat
	}
	buyer, ok := unpacked[1].(common.Address)
	if !ok {
		return "", "", "", 0, domain.ErrInvalidNumberFormat
	}
	price, ok := unpacked[2].(*big.Int)
	if !ok {
		return "", "", "", 0, domain.ErrInvalidNumberFormat
	}
	state, ok := unpacked[3].(uint8)
	if !ok {
		return "", "", "", 0, domain.ErrInvalidNumberFormat
	}
	return domain.Address(seller.Hex()).ToLower(),
		domain.Address(buyer.Hex()).ToLower(),
		units.Tinybar(price.String()),
		ListingState(state),
		nil
}
