package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/units"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/fulfillment"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/listing"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/query"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	ListingRepo     listing.Repo
	FulfillmentRepo fulfillment.Repo
	Escrow          contract.EscrowContract
	AssetToken      contract.AssetTokenContract
	EscrowAddress   domain.Address
	Query           query.Mongo
}

type listingUseCaseImpl struct {
	listingRepo     listing.Repo
	fulfillmentRepo fulfillment.Repo
	escrow          contract.EscrowContract
	assetToken      contract.AssetTokenContract
	escrowAddress   domain.Address
	q               query.Mongo
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	return &listingUseCaseImpl{
		listingRepo:     cfg.ListingRepo,
		fulfillmentRepo: cfg.FulfillmentRepo,
		escrow:          cfg.Escrow,
		assetToken:      cfg.AssetToken,
		escrowAddress:   cfg.EscrowAddress,
		q:               cfg.Query,
	}
}

// List canonicalizes the input, grants the escrow its single-serial
// allowance, submits the on-chain listing and only then writes the LISTED
// index record. An on-chain failure leaves no index record behind.
func (im *listingUseCaseImpl) List(c ctx.Ctx, session *account.Session, in listing.ListInput) (*listing.Listing, error) {
	serial, err := domain.ToSerial(in.Serial)
	if err != nil {
		return nil, err
	}
	price, err := units.ToTinybar(in.PriceHuman)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrBadParamInput
	}

	if _, err := im.assetToken.Approve(c, session, im.escrowAddress, serial); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": serial,
		}).Warn("escrow allowance approval failed")
		return nil, xerrors.Errorf("%s: %w", err.Error(), domain.ErrAllowanceFailed)
	}

	receipt, err := im.escrow.ListAsset(c, session, serial, price)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": serial,
		}).Warn("escrow.ListAsset failed")
		return nil, err
	}

	now := timeNow()
	id := listing.Id{CollectionId: in.CollectionId.ToLower(), Serial: serial}
	rec := &listing.Listing{
		DocId:        id.DocId(),
		CollectionId: id.CollectionId,
		Serial:       serial,
		Seller:       session.Address.ToLower(),
		Price:        price,
		Category:     in.Category,
		Name:         in.Name,
		Description:  in.Description,
		ImageUrl:     in.ImageUrl,
		State:        listing.StateListed,
		ListTx:       receipt.TxHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := im.listingRepo.Create(c, rec); err != nil {
		// the chain accepted the listing but the index write failed; the
		// reconciliation sweep picks this up from chain state
		c.WithFields(log.Fields{
			"err":   err,
			"docId": rec.DocId,
			"tx":    receipt.TxHash,
		}).Error("listingRepo.Create failed after chain success")
		return nil, err
	}

	return rec, nil
}

// Fund pays a listing into escrow. The chain is consulted immediately before
// the payable call to catch stale UI state, and re-read afterwards to make
// sure the payment actually moved the listing to funded. The index update
// and the derived fulfillment task are committed in one transaction guarded
// on the listing still being LISTED.
func (im *listingUseCaseImpl) Fund(c ctx.Ctx, session *account.Session, id listing.Id) (*domain.Receipt, error) {
	if session == nil {
		return nil, domain.ErrBadParamInput
	}

	rec, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if rec.State != listing.StateListed {
		return nil, domain.ErrInvalidStateTransition
	}
	if rec.Seller.Equals(session.Address) {
		// sellers cannot buy their own listing
		return nil, domain.ErrBadParamInput
	}

	// pre-flight read, the UI may be stale
	onchain, err := im.escrow.GetListing(c, id.Serial)
	if err != nil {
		return nil, err
	}
	if onchain.State != contract.ListingStateListed {
		return nil, domain.ErrNotListed
	}

	value, err := units.TinybarToWeibar(rec.Price)
	if err != nil {
		return nil, err
	}

	receipt, err := im.escrow.FundEscrow(c, session, id.Serial, value)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": id.Serial,
		}).Warn("escrow.FundEscrow failed")
		return nil, err
	}

	// confirm the payment settled the way we expect before touching the
	// index
	settled, err := im.escrow.GetListing(c, id.Serial)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": id.Serial,
			"tx":     receipt.TxHash,
		}).Error("post-fund chain read failed")
		return nil, err
	}
	if settled.State != contract.ListingStateFunded {
		c.WithFields(log.Fields{
			"serial": id.Serial,
			"state":  settled.State,
			"tx":     receipt.TxHash,
		}).Error("funded listing not observed as funded on chain")
		return nil, domain.ErrSettlementMismatch
	}

	now := timeNow()
	buyer := session.Address.ToLower()
	state := listing.StateFunded
	patch := listing.Patchable{
		Buyer:     &buyer,
		State:     &state,
		FundTx:    &receipt.TxHash,
		UpdatedAt: &now,
	}
	task := &fulfillment.Task{
		Id:           uuid.New().String(),
		ListingDocId: id.DocId(),
		CollectionId: id.CollectionId,
		Serial:       id.Serial,
		Seller:       rec.Seller,
		Buyer:        buyer,
		FundTx:       receipt.TxHash,
		Status:       fulfillment.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = im.q.RunWithTransaction(c, func(txCtx ctx.Ctx) error {
		if err := im.listingRepo.TransitState(txCtx, id, listing.StateListed, patch); err != nil {
			return err
		}
		return im.fulfillmentRepo.Create(txCtx, task)
	})
	if err != nil {
		// the escrow already holds the payment; never retry the chain call
		// from here
		c.WithFields(log.Fields{
			"err":    err,
			"serial": id.Serial,
			"tx":     receipt.TxHash,
		}).Error("index transition to FUNDED failed after chain success")
		return nil, err
	}

	return receipt, nil
}

// ConfirmDelivery releases the escrowed payment to the seller and settles
// the listing as SOLD.
func (im *listingUseCaseImpl) ConfirmDelivery(c ctx.Ctx, session *account.Session, id listing.Id) (*domain.Receipt, error) {
	if session == nil {
		return nil, domain.ErrBadParamInput
	}

	rec, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if rec.State != listing.StateFunded {
		return nil, domain.ErrInvalidStateTransition
	}
	if rec.Buyer == nil || !rec.Buyer.Equals(session.Address) {
		return nil, domain.ErrBadParamInput
	}

	receipt, err := im.escrow.ConfirmDelivery(c, session, id.Serial)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": id.Serial,
		}).Warn("escrow.ConfirmDelivery failed")
		return nil, err
	}

	now := timeNow()
	state := listing.StateSold
	patch := listing.Patchable{
		State:     &state,
		SettleTx:  &receipt.TxHash,
		UpdatedAt: &now,
	}
	status := fulfillment.StatusDelivered
	taskPatch := fulfillment.Patchable{
		Status:    &status,
		UpdatedAt: &now,
	}

	err = im.q.RunWithTransaction(c, func(txCtx ctx.Ctx) error {
		if err := im.listingRepo.TransitState(txCtx, id, listing.StateFunded, patch); err != nil {
			return err
		}
		if err := im.fulfillmentRepo.UpdateByListing(txCtx, id.DocId(), taskPatch); err != nil && err != domain.ErrNotFound {
			return err
		}
		return nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": id.Serial,
			"tx":     receipt.TxHash,
		}).Error("index transition to SOLD failed after chain success")
		return nil, err
	}

	return receipt, nil
}

// Cancel withdraws an open listing.
func (im *listingUseCaseImpl) Cancel(c ctx.Ctx, session *account.Session, id listing.Id) (*domain.Receipt, error) {
	if session == nil {
		return nil, domain.ErrBadParamInput
	}

	rec, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	if rec.State != listing.StateListed {
		return nil, domain.ErrInvalidStateTransition
	}
	if !rec.Seller.Equals(session.Address) {
		return nil, domain.ErrBadParamInput
	}

	receipt, err := im.escrow.CancelListing(c, session, id.Serial)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": id.Serial,
		}).Warn("escrow.CancelListing failed")
		return nil, err
	}

	now := timeNow()
	state := listing.StateCanceled
	patch := listing.Patchable{
		State:     &state,
		CancelTx:  &receipt.TxHash,
		UpdatedAt: &now,
	}
	if err := im.listingRepo.TransitState(c, id, listing.StateListed, patch); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": id.Serial,
			"tx":     receipt.TxHash,
		}).Error("index transition to CANCELED failed after chain success")
		return nil, err
	}

	return receipt, nil
}

func (im *listingUseCaseImpl) FindOne(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	return im.listingRepo.FindOne(c, id)
}

func (im *listingUseCaseImpl) FindAll(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	return im.listingRepo.FindAll(c, opts...)
}
