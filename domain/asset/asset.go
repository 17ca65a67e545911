package asset

import (
	"time"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
)

// Asset is the off-chain record of a minted tokenized asset. The serial is
// issued by the minting service; the record is what listings denormalize
// their descriptive metadata from.
type Asset struct {
	DocId        string         `json:"docId" bson:"_id"`
	CollectionId domain.Address `json:"collectionId" bson:"collectionId"`
	Serial       domain.Serial  `json:"serial" bson:"serial"`
	Producer     domain.Address `json:"producer" bson:"producer"`
	Name         string         `json:"name" bson:"name"`
	Description  string         `json:"description" bson:"description"`
	ImageUrl     string         `json:"imageUrl" bson:"imageUrl"`
	Category     string         `json:"category" bson:"category"`
	MintTx       domain.TxHash  `json:"mintTx" bson:"mintTx"`
	CreatedAt    time.Time      `json:"createdAt" bson:"createdAt"`
}

type FindAllOptions struct {
	CollectionId *domain.Address
	Producer     *domain.Address
	Category     *string
	Offset       *int32
	Limit        *int32
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

func WithProducer(producer domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Producer = producer.ToLowerPtr()
		return nil
	}
}

func WithCategory(category string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Category = &category
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
	Create(ctx ctx.Ctx, asset *Asset) error
	FindOne(ctx ctx.Ctx, collectionId domain.Address, serial domain.Serial) (*Asset, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Asset, error)
}

type MintInput struct {
	Name        string
	Description string
	ImageUrl    string
	Category    string
}

type Usecase interface {
	// Mint asks the minting service for a new serial under the asset
	// collection and records the asset metadata.
	Mint(ctx ctx.Ctx, session *account.Session, in MintInput) (*Asset, error)
	FindOne(ctx ctx.Ctx, collectionId domain.Address, serial domain.Serial) (*Asset, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Asset, error)
}
