package loan

import (
	"fmt"
	"time"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/units"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
)

type State string

const (
	StateActive     State = "ACTIVE"
	StateRepaid     State = "REPAID"
	StateLiquidated State = "LIQUIDATED"
)

func (s State) IsTerminal() bool {
	return s == StateRepaid || s == StateLiquidated
}

// Id identifies a loan by (borrower, serial). A borrower cannot hold two
// simultaneous active loans against the same serial.
type Id struct {
	Borrower domain.Address `json:"borrower" bson:"borrower"`
	Serial   domain.Serial  `json:"serial" bson:"serial"`
}

func (id Id) DocId() string {
	return fmt.Sprintf("%s-%s", id.Borrower.ToLower(), id.Serial)
}

type Loan struct {
	DocId    string         `json:"docId" bson:"_id"`
	Borrower domain.Address `json:"borrower" bson:"borrower"`
	Serial   domain.Serial  `json:"serial" bson:"serial"`

	// fixed at creation, 8-decimal minor units
	Principal units.Tinybar `json:"principal" bson:"principal"`
	Interest  units.Tinybar `json:"interest" bson:"interest"`

	DueTime time.Time `json:"dueTime" bson:"dueTime"`
	State   State     `json:"state" bson:"state"`

	IssueTx     domain.TxHash `json:"issueTx" bson:"issueTx"`
	RepayTx     domain.TxHash `json:"repayTx" bson:"repayTx,omitempty"`
	LiquidateTx domain.TxHash `json:"liquidateTx" bson:"liquidateTx,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (l *Loan) ToId() Id {
	return Id{
		Borrower: l.Borrower,
		Serial:   l.Serial,
	}
}

type Patchable struct {
	State       *State         `bson:"state,omitempty"`
	RepayTx     *domain.TxHash `bson:"repayTx,omitempty"`
	LiquidateTx *domain.TxHash `bson:"liquidateTx,omitempty"`
	UpdatedAt   *time.Time     `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Borrower      *domain.Address
	Serial        *domain.Serial
	State         *State
	DueBefore     *time.Time
	UpdatedBefore *time.Time
	Offset        *int32
	Limit         *int32
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithBorrower(borrower domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Borrower = borrower.ToLowerPtr()
		return nil
	}
}

func WithSerial(serial domain.Serial) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Serial = &serial
		return nil
	}
}

func WithState(state State) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.State = &state
		return nil
	}
}

func WithDueBefore(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.DueBefore = &t
		return nil
	}
}

func WithUpdatedBefore(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.UpdatedBefore = &t
		return nil
	}
}

func WithPagination(offset int32, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Loan, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Loan, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Create(ctx ctx.Ctx, loan *Loan) error
	// TransitState patches the document only if its current state equals
	// `from`. Returns domain.ErrConcurrentModification when the guard does
	// not hold.
	TransitState(ctx ctx.Ctx, id Id, from State, patch Patchable) error
	// TransitAllBySerial applies the patch to every document for the serial
	// currently in state `from` and reports how many were moved. Multiple
	// matches are unexpected but tolerated.
	TransitAllBySerial(ctx ctx.Ctx, serial domain.Serial, from State, patch Patchable) (int64, error)
}

// TakeInput carries borrower supplied loan terms; amounts arrive as human
// strings and are converted exactly once at the usecase boundary.
type TakeInput struct {
	Serial          interface{}
	PrincipalHuman  string
	InterestHuman   string
	DurationSeconds int64
}

type Usecase interface {
	Take(ctx ctx.Ctx, session *account.Session, in TakeInput) (*Loan, error)
	// Repay submits the value-bearing repay call. The transaction value is
	// always sized at the stored principal+interest; amountHuman is taken
	// for validation only, the contract is the source of truth for the
	// correctness of the repayment amount.
	Repay(ctx ctx.Ctx, session *account.Session, serial domain.Serial, amountHuman string) (*domain.Receipt, error)
	Liquidate(ctx ctx.Ctx, session *account.Session, serial domain.Serial, destination domain.Address) (*domain.Receipt, error)
	DepositLiquidity(ctx ctx.Ctx, session *account.Session, amountHuman string) (*domain.Receipt, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Loan, error)
}
