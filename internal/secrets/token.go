package secrets

import (
	"log"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// “Service” groups the app’s secrets in the OS keychain.
	KeyringService = "applydesk"

	tokenAccount = "applydesk:api:bearer-token"
)

// TokenStore keeps the API bearer token in the OS keychain. It satisfies
// the restclient.TokenStore contract: absent token means requests go out
// unauthenticated, and Evict drops the token after a 401.
type TokenStore struct{}

func (TokenStore) Token() (string, bool) {
	tok, err := keyring.Get(KeyringService, tokenAccount)
	if err != nil || strings.TrimSpace(tok) == "" {
		return "", false
	}
	return tok, true
}

func (TokenStore) Set(token string) error {
	return keyring.Set(KeyringService, tokenAccount, token)
}

func (TokenStore) Evict() {
	if err := keyring.Delete(KeyringService, tokenAccount); err != nil && err != keyring.ErrNotFound {
		log.Printf("[secrets] token evict failed: %v", err)
	}
}
