package listing

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
	StateListed   State = "LISTED"
	StateFunded   State = "FUNDED"
	StateSold     State = "SOLD"
	StateCanceled State = "CANCELED"
)

func (s State) IsTerminal() bool {
	return s == StateSold || s == StateCanceled
}

// Id identifies a listing by (collection, serial). Its DocId is used as the
// mongo _id so repeated writes for the same asset always target the same
// document.
type Id struct {
	CollectionId domain.Address `json:"collectionId" bson:"collectionId"`
	Serial       domain.Serial  `json:"serial" bson:"serial"`
}

func (id Id) DocId() string {
	return fmt.Sprintf("%s-%s", id.CollectionId.ToLower(), id.Serial)
}

type Listing struct {
	DocId        string          `json:"docId" bson:"_id"`
	CollectionId domain.Address  `json:"collectionId" bson:"collectionId"`
	Serial       domain.Serial   `json:"serial" bson:"serial"`
	Seller       domain.Address  `json:"seller" bson:"seller"`
	Buyer        *domain.Address `json:"buyer" bson:"buyer,omitempty"`

	// 8-decimal minor units, fixed at listing time
	Price units.Tinybar `json:"price" bson:"price"`

	Category    string `json:"category" bson:"category"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	ImageUrl    string `json:"imageUrl" bson:"imageUrl"`

	State State `json:"state" bson:"state"`

	// transaction id per transition
	ListTx   domain.TxHash `json:"listTx" bson:"listTx"`
	FundTx   domain.TxHash `json:"fundTx" bson:"fundTx,omitempty"`
	SettleTx domain.TxHash `json:"settleTx" bson:"settleTx,omitempty"`
	CancelTx domain.TxHash `json:"cancelTx" bson:"cancelTx,omitempty"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

func (l *Listing) ToId() Id {
	return Id{
		CollectionId: l.CollectionId,
		Serial:       l.Serial,
	}
}

type Patchable struct {
	Buyer     *domain.Address `bson:"buyer,omitempty"`
	State     *State          `bson:"state,omitempty"`
	FundTx    *domain.TxHash  `bson:"fundTx,omitempty"`
	SettleTx  *domain.TxHash  `bson:"settleTx,omitempty"`
	CancelTx  *domain.TxHash  `bson:"cancelTx,omitempty"`
	UpdatedAt *time.Time      `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	CollectionId  *domain.Address
	Seller        *domain.Address
	Buyer         *domain.Address
	State         *State
	Category      *string
	UpdatedBefore *time.Time
	Offset        *int32
	Limit         *int32
	SortBy        *string
	SortDir       *domain.SortDir
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

func WithCollectionId(collectionId domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.CollectionId = collectionId.ToLowerPtr()
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithBuyer(buyer domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Buyer = buyer.ToLowerPtr()
		return nil
	}
}

func WithState(state State) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.State = &state
		return nil
	}
}

func WithCategory(category string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Category = &category
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

func WithSort(sortBy string, sortDir domain.SortDir) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortBy = &sortBy
		options.SortDir = &sortDir
		return nil
	}
}

type Repo interface {
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Create(ctx ctx.Ctx, listing *Listing) error
	// TransitState patches the document only if its current state equals
	// `from`. Returns domain.ErrConcurrentModification when the guard does
	// not hold.
	TransitState(ctx ctx.Ctx, id Id, from State, patch Patchable) error
}

// ListInput carries the seller supplied fields of a new listing. Serial and
// PriceHuman arrive uncanonicalized and are validated before any chain call.
type ListInput struct {
	CollectionId domain.Address
	Serial       interface{}
	PriceHuman   string
	Category     string
	Name         string
	Description  string
	ImageUrl     string
}

type Usecase interface {
	List(ctx ctx.Ctx, session *account.Session, in ListInput) (*Listing, error)
	Fund(ctx ctx.Ctx, session *account.Session, id Id) (*domain.Receipt, error)
	ConfirmDelivery(ctx ctx.Ctx, session *account.Session, id Id) (*domain.Receipt, error)
	Cancel(ctx ctx.Ctx, session *account.Session, id Id) (*domain.Receipt, error)
	FindOne(ctx ctx.Ctx, id Id) (*Listing, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Listing, error)
}
