package repository

import (
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type accountRepoImpl struct {
	q query.Mongo
}

func New(q query.Mongo) account.Repo {
	return &accountRepoImpl{q}
}

func (im *accountRepoImpl) FindOne(ctx ctx.Ctx, address domain.Address) (*account.Account, error) {
	res := account.Account{}
	err := im.q.FindOne(ctx, domain.TableAccounts, bson.M{"_id": address.ToLower()}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *accountRepoImpl) Upsert(ctx ctx.Ctx, a *account.Account) error {
	a.Address = a.Address.ToLower()
	err := im.q.Upsert(ctx, domain.TableAccounts, bson.M{"_id": a.Address}, a)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"account": *a,
		}).Error("failed to q.Upsert")
		return err
	}
	return nil
}
