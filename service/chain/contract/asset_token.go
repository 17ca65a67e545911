package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/TreyKys/TogetHed-Hackathon-sub000/base/abi"
	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain"
)

type AssetTokenContract interface {
	// Approve grants a single-serial allowance, the prerequisite for both
	// escrow listing and loan collateral.
	Approve(ctx bCtx.Ctx, session *account.Session, operator domain.Address, serial domain.Serial) (*domain.Receipt, error)
	OwnerOf(ctx bCtx.Ctx, serial domain.Serial) (domain.Address, error)
	GetApproved(ctx bCtx.Ctx, serial domain.Serial) (domain.Address, error)
}

type AssetToken struct {
	chainService chain.Client
	abi          ethabi.ABI
	address      common.Address
}

func NewAssetToken(chainService chain.Client, address string) *AssetToken {
	return &AssetToken{
		chainService: chainService,
		abi:          baseabi.AssetTokenABI,
		address:      common.HexToAddress(address),
	}
}

// CollectionId is the asset collection identifier used in listing keys.
func (a *AssetToken) CollectionId() domain.Address {
	return domain.Address(a.address.Hex()).ToLower()
}

func (a *AssetToken) Approve(ctx bCtx.Ctx, session *account.Session, operator domain.Address, serial domain.Serial) (*domain.Receipt, error) {
	return a.chainService.Transact(ctx, session, a.address, a.abi, "approve",
		common.HexToAddress(string(operator)), serial.BigInt())
}

func (a *AssetToken) OwnerOf(ctx bCtx.Ctx, serial domain.Serial) (domain.Address, error) {
	unpacked, err := a.chainService.Call(ctx, a.address, nil, a.abi, "ownerOf", serial.BigInt())
	if err != nil {
		return "", err
	}
	owner, ok := unpacked[0].(common.Address)
	if !ok {
		return "", domain.ErrInvalidNumberFormat
	}
	return domain.Address(owner.Hex()).ToLower(), nil
}

func (a *AssetToken) GetApproved(ctx bCtx.Ctx, serial domain.Serial) (domain.Address, error) {
	unpacked, err := a.chainService.Call(ctx, a.address, nil, a.abi, "getApproved", serial.BigInt())
	if err != nil {
		return "", err
	}
	operator, ok := unpacked[0].(common.Address)
	if !ok {
		return "", domain.ErrInvalidNumberFormat
	}
	return domain.Address(operator.Hex()).ToLower(), nil
}
