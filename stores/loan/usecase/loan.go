package usecase

import (
	"time"

	"golang.org/x/xerrors"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/units"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/loan"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract"
)

var timeNow = time.Now

type LoanUseCaseCfg struct {
	LoanRepo    loan.Repo
	LendingPool contract.LendingPoolContract
	AssetToken  contract.AssetTokenContract
	PoolAddress domain.Address
	Admin       domain.Address
}

type loanUseCaseImpl struct {
	loanRepo    loan.Repo
	lendingPool contract.LendingPoolContract
	assetToken  contract.AssetTokenContract
	poolAddress domain.Address
	admin       domain.Address
}

func New(cfg *LoanUseCaseCfg) loan.Usecase {
	return &loanUseCaseImpl{
		loanRepo:    cfg.LoanRepo,
		lendingPool: cfg.LendingPool,
		assetToken:  cfg.AssetToken,
		poolAddress: cfg.PoolAddress,
		admin:       cfg.Admin.ToLower(),
	}
}

// Take issues a loan against a tokenized asset. The collateral allowance and
// the loan issuance are two separate chain transactions; when the allowance
// lands but issuance fails the allowance is left in place. The ACTIVE index
// record only exists after the issuance succeeded.
func (im *loanUseCaseImpl) Take(c ctx.Ctx, session *account.Session, in loan.TakeInput) (*loan.Loan, error) {
	serial, err := domain.ToSerial(in.Serial)
	if err != nil {
		return nil, err
	}
	principal, err := units.ToTinybar(in.PrincipalHuman)
	if err != nil {
		return nil, err
	}
	interest, err := units.ToTinybar(in.InterestHuman)
	if err != nil {
		return nil, err
	}
	if in.DurationSeconds <= 0 {
		return nil, domain.ErrBadParamInput
	}
	if session == nil {
		return nil, domain.ErrBadParamInput
	}

	id := loan.Id{Borrower: session.Address.ToLower(), Serial: serial}
	if existing, err := im.loanRepo.FindOne(c, id); err != nil && err != domain.ErrNotFound {
		return nil, err
	} else if err == nil && existing.State == loan.StateActive {
		return nil, domain.ErrConflict
	}

	if _, err := im.assetToken.Approve(c, session, im.poolAddress, serial); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": serial,
		}).Warn("collateral allowance approval failed")
		return nil, xerrors.Errorf("%s: %w", err.Error(), domain.ErrAllowanceFailed)
	}

	receipt, err := im.lendingPool.TakeLoan(c, session, serial, principal, interest, in.DurationSeconds)
	if err != nil {
		// the allowance granted above is deliberately not rolled back
		c.WithFields(log.Fields{
			"err":    err,
			"serial": serial,
		}).Warn("lendingPool.TakeLoan failed")
		return nil, err
	}

	now := timeNow()
	rec := &loan.Loan{
		DocId:     id.DocId(),
		Borrower:  id.Borrower,
		Serial:    serial,
		Principal: principal,
		Interest:  interest,
		DueTime:   now.Add(time.Duration(in.DurationSeconds) * time.Second),
		State:     loan.StateActive,
		IssueTx:   receipt.TxHash,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := im.loanRepo.Create(c, rec); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"docId": rec.DocId,
			"tx":    receipt.TxHash,
		}).Error("loanRepo.Create failed after chain success")
		return nil, err
	}

	return rec, nil
}

// Repay pays back the loan in full. The transaction value is always sized
// at the stored principal+interest, summed with big-integer arithmetic; the
// contract remains the source of truth for whether the amount is right.
func (im *loanUseCaseImpl) Repay(c ctx.Ctx, session *account.Session, serial domain.Serial, amountHuman string) (*domain.Receipt, error) {
	if session == nil {
		return nil, domain.ErrBadParamInput
	}
	// validates the caller's input, nothing more
	if _, err := units.ToTinybar(amountHuman); err != nil {
		return nil, err
	}

	id := loan.Id{Borrower: session.Address.ToLower(), Serial: serial}
	rec, err := im.loanRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if rec.State != loan.StateActive {
		return nil, domain.ErrInvalidStateTransition
	}

	total, err := units.AddTinybar(rec.Principal, rec.Interest)
	if err != nil {
		return nil, err
	}
	value, err := units.TinybarToWeibar(total)
	if err != nil {
		return nil, err
	}

	receipt, err := im.lendingPool.RepayLoan(c, session, serial, value)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": serial,
		}).Warn("lendingPool.RepayLoan failed")
		return nil, err
	}

	now := timeNow()
	state := loan.StateRepaid
	patch := loan.Patchable{
		State:     &state,
		RepayTx:   &receipt.TxHash,
		UpdatedAt: &now,
	}
	if err := im.loanRepo.TransitState(c, id, loan.StateActive, patch); err != nil {
		// the repayment already happened on chain; surface, never resubmit
		c.WithFields(log.Fields{
			"err":    err,
			"serial": serial,
			"tx":     receipt.TxHash,
		}).Error("index transition to REPAID failed after chain success")
		return nil, err
	}

	return receipt, nil
}

// Liquidate is the privileged closure path: seize the collateral and move
// every ACTIVE record for the serial to LIQUIDATED. Multiple matches are
// unexpected but tolerated.
func (im *loanUseCaseImpl) Liquidate(c ctx.Ctx, session *account.Session, serial domain.Serial, destination domain.Address) (*domain.Receipt, error) {
	if session == nil || !session.Address.Equals(im.admin) {
		return nil, domain.ErrBadParamInput
	}

	receipt, err := im.lendingPool.Liquidate(c, session, serial, destination)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": serial,
		}).Warn("lendingPool.Liquidate failed")
		return nil, err
	}

	now := timeNow()
	state := loan.StateLiquidated
	patch := loan.Patchable{
		State:       &state,
		LiquidateTx: &receipt.TxHash,
		UpdatedAt:   &now,
	}
	moved, err := im.loanRepo.TransitAllBySerial(c, serial, loan.StateActive, patch)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": serial,
			"tx":     receipt.TxHash,
		}).Error("index transition to LIQUIDATED failed after chain success")
		return nil, err
	}
	if moved > 1 {
		c.WithFields(log.Fields{
			"serial": serial,
			"moved":  moved,
		}).Warn("liquidation matched multiple active loans")
	}

	return receipt, nil
}

// DepositLiquidity funds the pool. It is independent of any specific loan
// and must not touch loan records; loan closure only ever happens through
// Repay and Liquidate.
func (im *loanUseCaseImpl) DepositLiquidity(c ctx.Ctx, session *account.Session, amountHuman string) (*domain.Receipt, error) {
	if session == nil || !session.Address.Equals(im.admin) {
		return nil, domain.ErrBadParamInput
	}

	value, err := units.ToWeibar(amountHuman)
	if err != nil {
		return nil, err
	}

	receipt, err := im.lendingPool.DepositLiquidity(c, session, value)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Warn("lendingPool.DepositLiquidity failed")
		return nil, err
	}

	return receipt, nil
}

func (im *loanUseCaseImpl) FindAll(c ctx.Ctx, opts ...loan.FindAllOptionsFunc) ([]*loan.Loan, error) {
	return im.loanRepo.FindAll(c, opts...)
}
