package account

import (
	"crypto/ecdsa"
	"time"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
)

// Account is the persisted record of a provisioned chain identity.
type Account struct {
	Address   domain.Address `json:"address" bson:"_id"`
	PublicKey string         `json:"publicKey" bson:"publicKey"`
	Alias     string         `json:"alias" bson:"alias"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

// Session is the explicit per-user signing context. It is constructed at
// login, passed to every orchestration call and dropped at logout; nothing
// holds it as ambient process state.
type Session struct {
	Address domain.Address
	Key     *ecdsa.PrivateKey
}

type Repo interface {
	FindOne(ctx ctx.Ctx, address domain.Address) (*Account, error)
	Upsert(ctx ctx.Ctx, account *Account) error
}

type Usecase interface {
	// Login restores a session for an already provisioned identity from its
	// signing key.
	Login(ctx ctx.Ctx, privateKeyHex string) (*Session, error)
	// Provision creates a new chain identity via the account-creation
	// service and persists its account record.
	Provision(ctx ctx.Ctx, alias string) (*Session, error)
	// Resolve returns the live in-process session for the address, or
	// domain.ErrNotFound when the address never logged in here.
	Resolve(ctx ctx.Ctx, address domain.Address) (*Session, error)
	Logout(ctx ctx.Ctx, address domain.Address) error
	Get(ctx ctx.Ctx, address domain.Address) (*Account, error)
}
