package repository

import (
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/database/mongoclient"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/loan"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type loanRepoImpl struct {
	q query.Mongo
}

func NewLoanRepo(q query.Mongo) loan.Repo {
	return &loanRepoImpl{q}
}

func (im *loanRepoImpl) makeQuery(opts ...loan.FindAllOptionsFunc) (bson.M, error) {
	options, err := loan.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	qry := bson.M{}

	if options.Borrower != nil {
		qry["borrower"] = *options.Borrower
	}

	if options.Serial != nil {
		qry["serial"] = *options.Serial
	}

	if options.State != nil {
		qry["state"] = *options.State
	}

	if options.DueBefore != nil {
		qry["dueTime"] = bson.M{"$lt": *options.DueBefore}
	}

	if options.UpdatedBefore != nil {
		qry["updatedAt"] = bson.M{"$lt": *options.UpdatedBefore}
	}

	return qry, nil
}

func (im *loanRepoImpl) FindOne(ctx ctx.Ctx, id loan.Id) (*loan.Loan, error) {
	res := loan.Loan{}
	err := im.q.FindOne(ctx, domain.TableLoans, bson.M{"_id": id.DocId()}, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *loanRepoImpl) FindAll(ctx ctx.Ctx, opts ...loan.FindAllOptionsFunc) ([]*loan.Loan, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := loan.GetFindAllOptions(opts...)
	offset, limit := 0, 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*loan.Loan{}
	err = im.q.Search(ctx, domain.TableLoans, offset, limit, "-updatedAt", qry, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *loanRepoImpl) Count(ctx ctx.Ctx, opts ...loan.FindAllOptionsFunc) (int, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableLoans, qry)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Count")
		return 0, err
	}

	return cnt, nil
}

func (im *loanRepoImpl) Create(ctx ctx.Ctx, l *loan.Loan) error {
	err := im.q.Insert(ctx, domain.TableLoans, l)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"loan": *l,
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *loanRepoImpl) TransitState(ctx ctx.Ctx, id loan.Id, from loan.State, patch loan.Patchable) error {
	selector := bson.M{
		"_id":   id.DocId(),
		"state": from,
	}

	updater, err := mongoclient.MakeBsonM(patch)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"patch": patch,
		}).Error("failed to mongoclient.MakeBsonM")
		return err
	}

	err = im.q.Patch(ctx, domain.TableLoans, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrConcurrentModification
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return err
	}

	return nil
}

func (im *loanRepoImpl) TransitAllBySerial(ctx ctx.Ctx, serial domain.Serial, from loan.State, patch loan.Patchable) (int64, error) {
	selector := bson.M{
		"serial": serial,
		"state":  from,
	}

	updater, err := mongoclient.MakeBsonM(patch)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"patch": patch,
		}).Error("failed to mongoclient.MakeBsonM")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableLoans, selector)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("failed to q.Count")
		return 0, err
	}
	if cnt == 0 {
		// nothing matched; tolerated, the ledger remains the authority
		return 0, nil
	}

	err = im.q.Patch(ctx, domain.TableLoans, selector, updater, query.WithPatchMany(true))
	if err == query.ErrNotFound {
		return 0, nil
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("failed to q.Patch")
		return 0, err
	}

	return int64(cnt), nil
}
