package reconciler

import (
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/backoff"
	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/loan"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/chain/contract"
)

type LoanSweeperCfg struct {
	LoanRepo    loan.Repo
	LendingPool contract.LendingPoolContract
	StaleAfter  time.Duration
	RetryLimit  int
	Backoff     *backoff.Backoff
	Interval    time.Duration
	ErrorCh     chan<- error
}

// LoanSweeper closes out ACTIVE loan records whose on-chain loan already
// reached a terminal state but whose index write was lost.
type LoanSweeper struct {
	loanRepo    loan.Repo
	lendingPool contract.LendingPoolContract
	staleAfter  time.Duration
	retryLimit  int
	backoff     *backoff.Backoff
	interval    time.Duration
	errorCh     chan<- error
	stoppedCh   chan interface{}
}

func NewLoanSweeper(cfg *LoanSweeperCfg) *LoanSweeper {
	return &LoanSweeper{
		loanRepo:    cfg.LoanRepo,
		lendingPool: cfg.LendingPool,
		staleAfter:  cfg.StaleAfter,
		retryLimit:  cfg.RetryLimit,
		backoff:     cfg.Backoff,
		interval:    cfg.Interval,
		errorCh:     cfg.ErrorCh,
		stoppedCh:   make(chan interface{}),
	}
}

func (i *LoanSweeper) Start(ctx bCtx.Ctx) {
	go i.loop(ctx)
}

func (i *LoanSweeper) Wait() {
	<-i.stoppedCh
}

func (i *LoanSweeper) loop(ctx bCtx.Ctx) {
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

func (i *LoanSweeper) SweepOnce(ctx bCtx.Ctx) error {
	limit := int32(100)
	offset := int32(0)
	staleBefore := time.Now().Add(-i.staleAfter)

	for {
		loans, err := i.loanRepo.FindAll(ctx,
			loan.WithState(loan.StateActive),
			loan.WithUpdatedBefore(staleBefore),
			loan.WithPagination(offset, limit),
		)
		if err != nil {
			ctx.WithFields(log.Fields{
				"offset": offset,
				"err":    err,
			}).Error("failed to loanRepo.FindAll")
			return err
		}

		removed := 0
		b := goroutines.NewBatch(sweepConcurrency, goroutines.WithBatchSize(len(loans)))
		for idx := 0; idx < len(loans); idx++ {
			l := loans[idx]
			b.Queue(func() (interface{}, error) {
				return i.reconcile(ctx, l)
			})
		}
		b.QueueComplete()
		for ret := range b.Results() {
			if ret.Error() != nil {
				ctx.WithField("err", ret.Error()).Error("loan reconcile error result")
			} else if left, ok := ret.Value().(bool); ok && left {
				removed++
			}
		}
		b.Close()

		if len(loans) < int(limit) {
			return nil
		}
		// reconciled records left the ACTIVE set, only records still in
		// place advance the window
		offset += int32(len(loans) - removed)
	}
}

// reconcile reports whether the record left the ACTIVE set, either through
// its own guarded transition or through a concurrent writer.
func (i *LoanSweeper) reconcile(ctx bCtx.Ctx, l *loan.Loan) (bool, error) {
	onchain, err := i.getLoan(ctx, l.Serial)
	if err != nil {
		ctx.WithFields(log.Fields{
			"docId": l.DocId,
			"err":   err,
		}).Error("failed to lendingPool.GetLoan")
		return false, nil
	}

	var observed loan.State
	switch onchain.State {
	case contract.LoanStateRepaid:
		observed = loan.StateRepaid
	case contract.LoanStateLiquidated:
		observed = loan.StateLiquidated
	default:
		// still active on chain, nothing to catch up
		return false, nil
	}

	now := time.Now()
	err = i.loanRepo.TransitState(ctx, l.ToId(), loan.StateActive, loan.Patchable{
		State:     &observed,
		UpdatedAt: &now,
	})
	if err == domain.ErrConcurrentModification {
		return true, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"docId": l.DocId,
			"err":   err,
		}).Error("failed to loanRepo.TransitState")
		return false, err
	}

	ctx.WithFields(log.Fields{
		"docId": l.DocId,
		"to":    observed,
	}).Info("reconciled loan with chain state")
	return true, nil
}

func (i *LoanSweeper) getLoan(ctx bCtx.Ctx, serial domain.Serial) (*contract.OnChainLoan, error) {
	var (
		retries = 0
		onchain *contract.OnChainLoan
		err     error
	)
	i.backoff.Reset()
	for retries < i.retryLimit {
		onchain, err = i.lendingPool.GetLoan(ctx, serial)
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
