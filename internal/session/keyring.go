package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/zalando/go-keyring"

	"jobconnect-client/internal/domain"
	"jobconnect-client/internal/store"
)

const (
	// Service groups the engine's secrets in the OS keychain.
	KeyringService = "jobconnect"
	keyringAccount = "jobconnect:token"
)

// KeyringStore keeps the bearer token in the OS keychain and the account
// record in the local sqlite kv table.
type KeyringStore struct {
	db *store.DB
}

func NewKeyringStore(db *store.DB) *KeyringStore {
	return &KeyringStore{db: db}
}

func (k *KeyringStore) Token() (string, error) {
	tok, err := keyring.Get(KeyringService, keyringAccount)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(tok), nil
}

func (k *KeyringStore) Load(ctx context.Context) (Credentials, error) {
	tok, err := k.Token()
	if err != nil {
		return Credentials{}, err
	}

	raw, err := k.db.GetKV(ctx, store.KeyAccount)
	if errors.Is(err, store.ErrNotFound) {
		return Credentials{Token: tok}, nil
	}
	if err != nil {
		return Credentials{}, err
	}

	var u domain.UserSummary
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return Credentials{Token: tok}, nil // corrupt record counts as absent
	}
	return Credentials{Token: tok, User: &u}, nil
}

func (k *KeyringStore) Save(ctx context.Context, c Credentials) error {
	if c.Token == "" {
		return errors.New("session: refusing to persist empty token")
	}
	if err := keyring.Set(KeyringService, keyringAccount, c.Token); err != nil {
		return err
	}
	return k.SaveUser(ctx, c.User)
}

func (k *KeyringStore) SaveUser(ctx context.Context, u *domain.UserSummary) error {
	if u == nil {
		return errors.New("session: refusing to persist nil user")
	}
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return k.db.SetKV(ctx, store.KeyAccount, string(b))
}

// Clear removes the token and every user-scoped cache row (account record,
// saved-jobs mirror) so the next sign-in starts clean.
func (k *KeyringStore) Clear(ctx context.Context) error {
	if err := keyring.Delete(KeyringService, keyringAccount); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return k.db.ClearUserData(ctx)
}
