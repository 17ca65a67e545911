package repository

import (
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/asset"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type assetRepoImpl struct {
	q query.Mongo
}

func NewAssetRepo(q query.Mongo) asset.Repo {
	return &assetRepoImpl{q}
}

func (im *assetRepoImpl) Create(ctx ctx.Ctx, a *asset.Asset) error {
	err := im.q.Insert(ctx, domain.TableAssets, a)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"asset": *a,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *assetRepoImpl) FindOne(ctx ctx.Ctx, collectionId domain.Address, serial domain.Serial) (*asset.Asset, error) {
	qry := bson.M{
		"collectionId": collectionId.ToLower(),
		"serial":       serial,
	}

	res := asset.Asset{}
	err := im.q.FindOne(ctx, domain.TableAssets, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *assetRepoImpl) FindAll(ctx ctx.Ctx, opts ...asset.FindAllOptionsFunc) ([]*asset.Asset, error) {
	options, err := asset.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}
	if options.CollectionId != nil {
		qry["collectionId"] = *options.CollectionId
	}
	if options.Producer != nil {
		qry["producer"] = *options.Producer
	}
	if options.Category != nil {
		qry["category"] = *options.Category
	}

	offset, limit := 0, 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*asset.Asset{}
	err = im.q.Search(ctx, domain.TableAssets, offset, limit, "-createdAt", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}
