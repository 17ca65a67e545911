package chain

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/units"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
)

var ErrNoClient = errors.New("chain client unavailable")

type ClientCfg struct {
	RpcUrl  string
	ChainId int64
	// ceiling when gas estimation succeeds; estimation heuristics are the
	// node's business, not ours
	GasLimit uint64
	// how long to wait for a receipt before abandoning the local wait. The
	// submitted call stays in flight either way and is left to the
	// reconciliation sweep.
	ReceiptTimeout time.Duration
}

// Client is the single gateway to the ledger RPC. Call is read-only and safe
// to retry; Transact and TransactWithValue change state and must never be
// resubmitted on timeout, because the first submission may already have
// taken effect.
type Client interface {
	Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	Transact(ctx bCtx.Ctx, session *account.Session, addr common.Address, abi abi.ABI, method string, params ...interface{}) (*domain.Receipt, error)
	// TransactWithValue additionally carries a payable amount. The value
	// field is denominated in 18-decimal minor units, which the units type
	// enforces at the boundary.
	TransactWithValue(ctx bCtx.Ctx, session *account.Session, addr common.Address, value units.Weibar, abi abi.ABI, method string, params ...interface{}) (*domain.Receipt, error)
}

type clientImpl struct {
	client  *ethclient.Client
	chainId *big.Int
	cfg     *ClientCfg
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	client, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": cfg.RpcUrl,
		}).Warn("failed to dial rpc")
		// soft warning, still let the server start
	}
	if cfg.GasLimit == 0 {
		cfg.GasLimit = 1000000
	}
	if cfg.ReceiptTimeout == 0 {
		cfg.ReceiptTimeout = 90 * time.Second
	}
	return &clientImpl{
		client:  client,
		chainId: big.NewInt(cfg.ChainId),
		cfg:     cfg,
	}, err
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	if c.client == nil {
		return nil, ErrNoClient
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithField("err", err).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, session *account.Session, addr common.Address, _abi abi.ABI, method string, params ...interface{}) (*domain.Receipt, error) {
	return c.transact(ctx, session, addr, nil, _abi, method, params...)
}

func (c *clientImpl) TransactWithValue(ctx bCtx.Ctx, session *account.Session, addr common.Address, value units.Weibar, _abi abi.ABI, method string, params ...interface{}) (*domain.Receipt, error) {
	amount, err := value.BigInt()
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, session, addr, amount, _abi, method, params...)
}

func (c *clientImpl) transact(ctx bCtx.Ctx, session *account.Session, addr common.Address, value *big.Int, _abi abi.ABI, method string, params ...interface{}) (*domain.Receipt, error) {
	if c.client == nil {
		return nil, ErrNoClient
	}
	if session == nil || session.Key == nil {
		return nil, domain.ErrBadParamInput
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}

	from := crypto.PubkeyToAddress(session.Key.PublicKey)

	nonce, err := c.client.PendingNonceAt(ctx, from)
	if err != nil {
		ctx.WithField("err", err).Error("client.PendingNonceAt failed")
		return nil, err
	}
	gasPrice, err := c.client.SuggestGasPrice(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("client.SuggestGasPrice failed")
		return nil, err
	}

	// the node refuses calls it knows will revert, which surfaces a
	// rejection before any gas is spent
	gasLimit, err := c.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &addr,
		Value: value,
		Data:  data,
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Warn("gas estimation rejected call")
		return nil, xerrors.Errorf("%s: %s: %w", method, err.Error(), domain.ErrChainRejected)
	}
	gasLimit = gasLimit + gasLimit/5
	if gasLimit > c.cfg.GasLimit {
		gasLimit = c.cfg.GasLimit
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &addr,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainId), session.Key)
	if err != nil {
		ctx.WithField("err", err).Error("types.SignTx failed")
		return nil, err
	}

	if err := c.client.SendTransaction(ctx, signed); err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Error("client.SendTransaction failed")
		return nil, err
	}

	// once submitted the call cannot be cancelled, only its local wait can
	waitCtx, cancel := bCtx.WithTimeout(ctx, c.cfg.ReceiptTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, c.client, signed)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"txHash": signed.Hash().Hex(),
			"err":    err,
		}).Error("waiting for receipt failed")
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		ctx.WithFields(log.Fields{
			"method": method,
			"txHash": signed.Hash().Hex(),
			"status": receipt.Status,
		}).Warn("chain call reverted")
		return nil, xerrors.Errorf("%s reverted in tx %s: %w", method, signed.Hash().Hex(), domain.ErrChainRejected)
	}

	return &domain.Receipt{
		TxHash:      domain.TxHash(signed.Hash().Hex()),
		BlockNumber: domain.BlockNumber(receipt.BlockNumber.Uint64()),
		GasUsed:     receipt.GasUsed,
	}, nil
}
