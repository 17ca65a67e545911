package usecase

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/ctx"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/base/log"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/account"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/domain/keys"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/provision"
	"github.com/TreyKys/TogetHed-Hackathon-sub000/service/redis"
)

const sessionTTL = 24 * time.Hour

var timeNow = time.Now

type AccountUseCaseCfg struct {
	Repo      account.Repo
	Provision provision.Client
	Redis     redis.Service
}

type accountUseCaseImpl struct {
	repo      account.Repo
	provision provision.Client
	redis     redis.Service

	// live sessions; the signing key never leaves this process
	mu       sync.RWMutex
	sessions map[domain.Address]*account.Session
}

func New(cfg *AccountUseCaseCfg) account.Usecase {
	return &accountUseCaseImpl{
		repo:      cfg.Repo,
		provision: cfg.Provision,
		redis:     cfg.Redis,
		sessions:  map[domain.Address]*account.Session{},
	}
}

func sessionKey(address domain.Address) string {
	return keys.RedisKey(keys.PfxSession, address.ToLowerStr())
}

// Login rebuilds a session from the caller's signing key. The key never
// leaves the process; only the address is marked live in redis.
func (im *accountUseCaseImpl) Login(c ctx.Ctx, privateKeyHex string) (*account.Session, error) {
	raw, err := hexutil.Decode(withHexPrefix(privateKeyHex))
	if err != nil {
		return nil, domain.ErrBadParamInput
	}
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, domain.ErrBadParamInput
	}
	address := domain.Address(crypto.PubkeyToAddress(key.PublicKey).Hex()).ToLower()

	if _, err := im.repo.FindOne(c, address); err != nil {
		if err == domain.ErrNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := im.redis.Set(c, sessionKey(address), []byte(timeNow().Format(time.RFC3339)), sessionTTL); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Warn("failed to mark session live")
	}

	session := &account.Session{
		Address: address,
		Key:     key,
	}
	im.mu.Lock()
	im.sessions[address] = session
	im.mu.Unlock()

	return session, nil
}

// Provision asks the account-creation service for a brand new chain
// identity, persists its record and opens a session for it.
func (im *accountUseCaseImpl) Provision(c ctx.Ctx, alias string) (*account.Session, error) {
	identity, err := im.provision.CreateAccount(c, alias)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"alias": alias,
		}).Error("provision.CreateAccount failed")
		return nil, err
	}

	raw, err := hexutil.Decode(withHexPrefix(identity.PrivateKeyHex))
	if err != nil {
		return nil, domain.ErrInternalServerError
	}
	key, err := crypto.ToECDSA(raw)
	if err != nil {
		return nil, domain.ErrInternalServerError
	}

	rec := &account.Account{
		Address:   identity.Address.ToLower(),
		PublicKey: identity.PublicKey,
		Alias:     alias,
		CreatedAt: timeNow(),
	}
	if err := im.repo.Upsert(c, rec); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": rec.Address,
		}).Error("repo.Upsert failed")
		return nil, err
	}

	if err := im.redis.Set(c, sessionKey(rec.Address), []byte(timeNow().Format(time.RFC3339)), sessionTTL); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"address": rec.Address,
		}).Warn("failed to mark session live")
	}

	session := &account.Session{
		Address: rec.Address,
		Key:     key,
	}
	im.mu.Lock()
	im.sessions[rec.Address] = session
	im.mu.Unlock()

	return session, nil
}

func (im *accountUseCaseImpl) Resolve(c ctx.Ctx, address domain.Address) (*account.Session, error) {
	im.mu.RLock()
	session, ok := im.sessions[address.ToLower()]
	im.mu.RUnlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	return session, nil
}

// Logout drops the live-session marker. The caller discards its Session;
// there is no server side copy of the key to clear.
func (im *accountUseCaseImpl) Logout(c ctx.Ctx, address domain.Address) error {
	im.mu.Lock()
	delete(im.sessions, address.ToLower())
	im.mu.Unlock()

	if _, err := im.redis.Del(c, sessionKey(address)); err != nil && err != redis.ErrNotFound {
		c.WithFields(log.Fields{
			"err":     err,
			"address": address,
		}).Warn("failed to drop session marker")
		return err
	}
	return nil
}

func (im *accountUseCaseImpl) Get(c ctx.Ctx, address domain.Address) (*account.Account, error) {
	return im.repo.FindOne(c, address.ToLower())
}

func withHexPrefix(s string) string {
	if len(s) >= 2 && s[0:2] == "0x" {
		return s
	}
	return "0x" + s
}
