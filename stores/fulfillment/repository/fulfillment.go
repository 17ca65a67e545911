package repository

import (
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/database/mongoclient"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/fulfillment"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type fulfillmentRepoImpl struct {
	q query.Mongo
}

func NewFulfillmentRepo(q query.Mongo) fulfillment.Repo {
	return &fulfillmentRepoImpl{q}
}

func (im *fulfillmentRepoImpl) Create(ctx ctx.Ctx, task *fulfillment.Task) error {
	err := im.q.Insert(ctx, domain.TableFulfillments, task)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"task": *task,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *fulfillmentRepoImpl) FindAll(ctx ctx.Ctx, opts ...fulfillment.FindAllOptionsFunc) ([]*fulfillment.Task, error) {
	options, err := fulfillment.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}

	qry := bson.M{}
	if options.Seller != nil {
		qry["seller"] = *options.Seller
	}
	if options.Buyer != nil {
		qry["buyer"] = *options.Buyer
	}
	if options.Status != nil {
		qry["status"] = *options.Status
	}

	res := []*fulfillment.Task{}
	err = im.q.Search(ctx, domain.TableFulfillments, 0, 0, "-createdAt", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *fulfillmentRepoImpl) UpdateByListing(ctx ctx.Ctx, listingDocId string, patch fulfillment.Patchable) error {
	updater, err := mongoclient.MakeBsonM(patch)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"patch": patch,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableFulfillments, bson.M{"listingDocId": listingDocId}, updater, query.WithPatchMany(true))
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":          err,
			"listingDocId": listingDocId,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}
