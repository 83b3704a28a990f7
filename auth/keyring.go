// Package auth stores the optional Twitch OAuth token in the system keyring.
package auth

import (
	"errors"
	"strings"

	"github.com/samber/mo"
	"github.com/ttvcli/ttv/constant"
	"github.com/zalando/go-keyring"
)

const user = "twitch-oauth"

// SetToken persists the OAuth token. An "oauth:" prefix, as copied from
// browser cookies or chat clients, is stripped.
func SetToken(token string) error {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "oauth:"))
	if token == "" {
		return errors.New("empty token")
	}
	return keyring.Set(constant.App, user, token)
}

// Token returns the stored OAuth token, None when nothing is stored.
func Token() (mo.Option[string], error) {
	token, err := keyring.Get(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return mo.None[string](), nil
	}
	if err != nil {
		return mo.None[string](), err
	}
	return mo.Some(token), nil
}

// DeleteToken removes the stored OAuth token. Deleting a missing token is not an error.
func DeleteToken() error {
	err := keyring.Delete(constant.App, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
