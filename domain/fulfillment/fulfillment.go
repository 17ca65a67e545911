package fulfillment

import (
	"time"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusDelivered Status = "DELIVERED"
)

// Task is the fulfillment work item derived from a funded listing. It is
// created in the same index transaction that moves the listing to FUNDED, so
// a funded listing and its task are never observed apart.
type Task struct {
	Id           string         `json:"id" bson:"_id"`
	ListingDocId string         `json:"listingDocId" bson:"listingDocId"`
	CollectionId domain.Address `json:"collectionId" bson:"collectionId"`
	Serial       domain.Serial  `json:"serial" bson:"serial"`
	Seller       domain.Address `json:"seller" bson:"seller"`
	Buyer        domain.Address `json:"buyer" bson:"buyer"`
	FundTx       domain.TxHash  `json:"fundTx" bson:"fundTx"`
	Status       Status         `json:"status" bson:"status"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Patchable struct {
	Status    *Status    `bson:"status,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

type FindAllOptions struct {
	Seller *domain.Address
	Buyer  *domain.Address
	Status *Status
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

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

type Repo interface {
	Create(ctx ctx.Ctx, task *Task) error
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Task, error)
	UpdateByListing(ctx ctx.Ctx, listingDocId string, patch Patchable) error
}
