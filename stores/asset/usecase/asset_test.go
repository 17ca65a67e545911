package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/xerrors"

	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/asset"
	mAsset "github.com/TreyKys/TogetHed-Hackathon-sub000/domain/asset/mocks"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/provision"
	mProvision "github.com/TreyKys/TogetHed-Hackathon-sub000/service/provision/mocks"
)

const (
	testCollection = domain.Address("0x00000000000000000000000000000000000a11ce")
	testProducer   = domain.Address("0x0000000000000000000000000000000000000001")
)

type assetSuite struct {
	suite.Suite

	repo        *mAsset.Repo
	provisioner *mProvision.Client
	im          *assetUseCaseImpl
}

func TestAssetSuite(t *testing.T) {
	suite.Run(t, new(assetSuite))
}

func (s *assetSuite) SetupTest() {
	s.repo = &mAsset.Repo{}
	s.provisioner = &mProvision.Client{}
	s.im = New(&AssetUseCaseCfg{
		Repo:      s.repo,
		Provision: s.provisioner,
	}).(*assetUseCaseImpl)
}

func (s *assetSuite) TearDownTest() {
	s.repo.AssertExpectations(s.T())
	s.provisioner.AssertExpectations(s.T())
}

func (s *assetSuite) TestMint() {
	ctx := bCtx.Background()
	session := &account.Session{Address: testProducer}
	in := asset.MintInput{
		Name:     "warehouse 7",
		ImageUrl: "ipfs://meta/7",
		Category: "real-estate",
	}

	// the minting service reports serials as json numbers
	s.provisioner.On("MintAsset", mock.Anything, testProducer, "ipfs://meta/7").
		Return(&provision.MintedAsset{
			CollectionId: testCollection,
			Serial:       float64(7),
			MintTx:       "0x111",
		}, nil)
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(a *asset.Asset) bool {
		return a.DocId == string(testCollection)+"-7" &&
			a.Serial == domain.Serial("7") &&
			a.Producer == testProducer &&
			a.MintTx == "0x111"
	})).Return(nil)

	rec, err := s.im.Mint(ctx, session, in)
	s.NoError(err)
	s.Equal(domain.Serial("7"), rec.Serial)
	s.Equal(testCollection, rec.CollectionId)
}

func (s *assetSuite) TestMintBigIntSerial() {
	ctx := bCtx.Background()
	session := &account.Session{Address: testProducer}

	s.provisioner.On("MintAsset", mock.Anything, testProducer, "ipfs://meta/8").
		Return(&provision.MintedAsset{
			CollectionId: testCollection,
			Serial:       big.NewInt(8),
			MintTx:       "0x222",
		}, nil)
	s.repo.On("Create", mock.Anything, mock.MatchedBy(func(a *asset.Asset) bool {
		return a.Serial == domain.Serial("8")
	})).Return(nil)

	_, err := s.im.Mint(ctx, session, asset.MintInput{ImageUrl: "ipfs://meta/8"})
	s.NoError(err)
}

func (s *assetSuite) TestMintBackendFailure() {
	ctx := bCtx.Background()
	session := &account.Session{Address: testProducer}

	backendErr := xerrors.New("mint rejected")
	s.provisioner.On("MintAsset", mock.Anything, testProducer, "ipfs://meta/9").
		Return(nil, backendErr)

	_, err := s.im.Mint(ctx, session, asset.MintInput{ImageUrl: "ipfs://meta/9"})
	s.ErrorIs(err, backendErr)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *assetSuite) TestMintUnparsableSerial() {
	ctx := bCtx.Background()
	session := &account.Session{Address: testProducer}

	s.provisioner.On("MintAsset", mock.Anything, testProducer, "ipfs://meta/10").
		Return(&provision.MintedAsset{
			CollectionId: testCollection,
			Serial:       "10.5",
			MintTx:       "0x333",
		}, nil)

	_, err := s.im.Mint(ctx, session, asset.MintInput{ImageUrl: "ipfs://meta/10"})
	s.ErrorIs(err, domain.ErrInvalidSerial)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}
