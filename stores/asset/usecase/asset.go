package usecase

import (
	"time"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/asset"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/provision"
)

var timeNow = time.Now

type AssetUseCaseCfg struct {
	Repo      asset.Repo
	Provision provision.Client
}

type assetUseCaseImpl struct {
	repo      asset.Repo
	provision provision.Client
}

func New(cfg *AssetUseCaseCfg) asset.Usecase {
	return &assetUseCaseImpl{
		repo:      cfg.Repo,
		provision: cfg.Provision,
	}
}

// Mint delegates serial issuance to the minting service. The serial comes
// back in whatever numeric shape the service picked, so it is canonicalized
// before the record is keyed on it.
func (im *assetUseCaseImpl) Mint(c ctx.Ctx, session *account.Session, in asset.MintInput) (*asset.Asset, error) {
	minted, err := im.provision.MintAsset(c, session.Address, in.ImageUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": session.Address,
		}).Error("provision.MintAsset failed")
		return nil, err
	}

	serial, err := domain.ToSerial(minted.Serial)
	if err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"serial": minted.Serial,
		}).Error("failed to canonicalize minted serial")
		return nil, err
	}

	collectionId := minted.CollectionId.ToLower()
	rec := &asset.Asset{
		DocId:        assetDocId(collectionId, serial),
		CollectionId: collectionId,
		Serial:       serial,
		Producer:     session.Address.ToLower(),
		Name:         in.Name,
		Description:  in.Description,
		ImageUrl:     in.ImageUrl,
		Category:     in.Category,
		MintTx:       minted.MintTx,
		CreatedAt:    timeNow(),
	}
	if err := im.repo.Create(c, rec); err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"docId": rec.DocId,
		}).Error("repo.Create failed")
		return nil, err
	}
	return rec, nil
}

func (im *assetUseCaseImpl) FindOne(c ctx.Ctx, collectionId domain.Address, serial domain.Serial) (*asset.Asset, error) {
	return im.repo.FindOne(c, collectionId.ToLower(), serial)
}

func (im *assetUseCaseImpl) FindAll(c ctx.Ctx, opts ...asset.FindAllOptionsFunc) ([]*asset.Asset, error) {
	return im.repo.FindAll(c, opts...)
}

func assetDocId(collectionId domain.Address, serial domain.Serial) string {
	return string(collectionId) + "-" + string(serial)
}
