package provision

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// NewIdentity is what the account-creation service hands back: a funded
// chain identity plus the key the wallet capability will sign with.
type NewIdentity struct {
	Address       domain.Address `json:"address"`
	PublicKey     string         `json:"publicKey"`
	PrivateKeyHex string         `json:"privateKey"`
}

// MintedAsset is the minting service's response for a freshly issued serial.
type MintedAsset struct {
	CollectionId domain.Address `json:"collectionId"`
	Serial       interface{}    `json:"serialNumber"`
	MintTx       domain.TxHash  `json:"txHash"`
}

// Client talks to the surrounding system's provisioning backend, which owns
// account creation and asset minting. Both endpoints are external
// collaborators; this client only ferries their answers.
type Client interface {
	CreateAccount(ctx bCtx.Ctx, alias string) (*NewIdentity, error)
	MintAsset(ctx bCtx.Ctx, owner domain.Address, metadataUri string) (*MintedAsset, error)
}

type ClientCfg struct {
	HttpClient http.Client
	Endpoint   string
	Timeout    time.Duration
	Apikey     string
}
