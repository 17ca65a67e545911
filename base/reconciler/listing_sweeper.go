package reconciler

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/backoff"
	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/listing"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract"
)

// sweepConcurrency bounds parallel read-only chain calls per page
const sweepConcurrency = 10

type ListingSweeperCfg struct {
	ListingRepo listing.Repo
	Escrow      contract.EscrowContract
	StaleAfter  time.Duration
	RetryLimit  int
	Backoff     *backoff.Backoff
	Interval    time.Duration
	ErrorCh     chan<- error
}

// ListingSweeper re-reads chain state for index records stuck in a
// non-terminal state past StaleAfter and applies the guarded transition the
// crashed writer never got to. Chain reads are retry-safe; the index write
// keeps its compare-and-swap guard, so a concurrent writer always wins.
type ListingSweeper struct {
	listingRepo listing.Repo
	escrow      contract.EscrowContract
	staleAfter  time.Duration
	retryLimit  int
	backoff     *backoff.Backoff
	interval    time.Duration
	errorCh     chan<- error
	stoppedCh   chan interface{}
}

func NewListingSweeper(cfg *ListingSweeperCfg) *ListingSweeper {
	return &ListingSweeper{
		listingRepo: cfg.ListingRepo,
		escrow:      cfg.Escrow,
		staleAfter:  cfg.StaleAfter,
		retryLimit:  cfg.RetryLimit,
		backoff:     cfg.Backoff,
		interval:    cfg.Interval,
		errorCh:     cfg.ErrorCh,
		stoppedCh:   make(chan interface{}),
	}
}

func (i *ListingSweeper) Start(ctx bCtx.Ctx) {
	go i.loop(ctx)
}

func (i *ListingSweeper) Wait() {
	<-i.stoppedCh
}

func (i *ListingSweeper) loop(ctx bCtx.Ctx) {
	nextTick := time.Second * 0

	for {
		select {
		case <-ctx.Done():
			close(i.stoppedCh)
			return
		case <-time.After(nextTick):
			if err := i.SweepOnce(ctx); err != nil {
				i.errorCh <- err
				close(i.stoppedCh)
				return
			}
			nextTick = i.interval
		}
	}
}

// SweepOnce walks every non-terminal listing state once
func (i *ListingSweeper) SweepOnce(ctx bCtx.Ctx) error {
	for _, state := range []listing.State{listing.StateListed, listing.StateFunded} {
		if err := i.sweepState(ctx, state); err != nil {
			return err
		}
	}
	return nil
}

func (i *ListingSweeper) sweepState(ctx bCtx.Ctx, state listing.State) error {
	limit := int32(100)
	offset := int32(0)
	staleBefore := time.Now().Add(-i.staleAfter)

	for {
		listings, err := i.listingRepo.FindAll(ctx,
			listing.WithState(state),
			listing.WithUpdatedBefore(staleBefore),
			listing.WithPagination(offset, limit),
		)
		if err != nil {
			ctx.WithFields(log.Fields{
				"state":  state,
				"offset": offset,
				"err":    err,
			}).Error("failed to listingRepo.FindAll")
			return err
		}

		removed := 0
		b := goroutines.NewBatch(sweepConcurrency, goroutines.WithBatchSize(len(listings)))
		for idx := 0; idx < len(listings); idx++ {
			l := listings[idx]
			b.Queue(func() (interface{}, error) {
				return i.reconcile(ctx, l)
			})
		}
		b.QueueComplete()
		for ret := range b.Results() {
			if ret.Error() != nil {
				ctx.WithField("err", ret.Error()).Error("listing reconcile error result")
			} else if left, ok := ret.Value().(bool); ok && left {
				removed++
			}
		}
		b.Close()

		if len(listings) < int(limit) {
			return nil
		}
		// reconciled records left the filtered set, only records still in
		// place advance the window
		offset += int32(len(listings) - removed)
	}
}

// reconcile reports whether the record left the swept state, either through
// its own guarded transition or through a concurrent writer.
func (i *ListingSweeper) reconcile(ctx bCtx.Ctx, l *listing.Listing) (bool, error) {
	onchain, err := i.getListing(ctx, l.Serial)
	if err != nil {
		// leave the record for the next sweep
		ctx.WithFields(log.Fields{
			"docId": l.DocId,
			"err":   err,
		}).Error("failed to escrow.GetListing")
		return false, nil
	}

	observed := toListingState(onchain.State)
	if observed == l.State {
		return false, nil
	}
	if !canTransit(l.State, observed) {
		ctx.WithFields(log.Fields{
			"docId":    l.DocId,
			"from":     l.State,
			"observed": observed,
		}).Warn("chain reports unreachable listing state, skipped")
		return false, nil
	}

	now := time.Now()
	patch := listing.Patchable{
		State:     &observed,
		UpdatedAt: &now,
	}
	if observed == listing.StateFunded && !onchain.Buyer.IsEmpty() {
		patch.Buyer = onchain.Buyer.ToLowerPtr()
	}

	err = i.listingRepo.TransitState(ctx, l.ToId(), l.State, patch)
	if err == domain.ErrConcurrentModification {
		// another writer already advanced the record
		return true, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"docId": l.DocId,
			"err":   err,
		}).Error("failed to listingRepo.TransitState")
		return false, err
	}

	ctx.WithFields(log.Fields{
		"docId": l.DocId,
		"from":  l.State,
		"to":    observed,
	}).Info("reconciled listing with chain state")
	return true, nil
}

func (i *ListingSweeper) getListing(ctx bCtx.Ctx, serial domain.Serial) (*contract.OnChainListing, error) {
	var (
		retries = 0
		onchain *contract.OnChainListing
		err     error
	)
	i.backoff.Reset()
	for retries < i.retryLimit {
		onchain, err = i.escrow.GetListing(ctx, serial)
		if err == nil {
			break
		}
		retries++
		if i.backoff.Backoff(ctx) != nil {
			// ctx closed
			break
		}
	}
	return onchain, err
}

func toListingState(s contract.ListingState) listing.State {
	switch s {
	case contract.ListingStateFunded:
		return listing.StateFunded
	case contract.ListingStateSold:
		return listing.StateSold
	case contract.ListingStateCanceled:
		return listing.StateCanceled
	default:
		return listing.StateListed
	}
}

// canTransit restates the listing state machine for sweep-driven moves.
// Terminal states never leave; FUNDED never falls back to LISTED. Unlike the
// live path the sweep may move LISTED straight to SOLD: it replays chain
// truth after a lost write, so an intermediate FUNDED it never observed is
// legal to skip.
func canTransit(from, to listing.State) bool {
	switch from {
	case listing.StateListed:
		return to == listing.StateFunded || to == listing.StateSold || to == listing.StateCanceled
	case listing.StateFunded:
		return to == listing.StateSold
	default:
		return false
	}
}
