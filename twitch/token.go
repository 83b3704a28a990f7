package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/ttvcli/ttv/log"
)

// Token is the signed playback authorization exchanged for a playlist.
type Token struct {
	Token string `json:"token"`
	Sig   string `json:"sig"`
}

type tokenResponse struct {
	Token
	Error   string `json:"error"`
	Message string `json:"message"`
}

func (c *Client) tokenURL(kind Kind, id string) string {
	switch kind {
	case VOD:
		return fmt.Sprintf("%s/api/vods/%s/access_token", c.Endpoints.API, url.PathEscape(id))
	default:
		return fmt.Sprintf("%s/api/channels/%s/access_token", c.Endpoints.API, url.PathEscape(id))
	}
}

// AccessToken requests a playback token for a broadcaster login or a video id.
func (c *Client) AccessToken(ctx context.Context, kind Kind, id string) (Token, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Token{}, fmt.Errorf("%s access token: empty identifier", kind)
	}

	log.Infof("requesting %s access token for %s", kind, id)
	target := c.tokenURL(kind, id)
	body, status, err := c.get(ctx, target, url.Values{
		"adblock":     {"true"},
		"need_https":  {"true"},
		"platform":    {"web"},
		"player_type": {"site"},
	})
	if err != nil {
		return Token{}, fmt.Errorf("%s access token: %w", kind, err)
	}

	var response tokenResponse
	if err := json.Unmarshal(body, &response); err != nil {
		if status != http.StatusOK {
			return Token{}, &StatusError{URL: target, Code: status}
		}
		return Token{}, fmt.Errorf("%s access token: %w", kind, err)
	}

	if response.Error != "" {
		message := response.Message
		if message == "" {
			message = response.Error
		}
		err := errors.New(message)
		if status == http.StatusNotFound {
			err = fmt.Errorf("%s: %w", message, ErrNotFound)
		}
		log.Error(err)
		return Token{}, fmt.Errorf("%s access token: %w", kind, err)
	}

	if status != http.StatusOK {
		return Token{}, &StatusError{URL: target, Code: status}
	}

	if response.Token.Token == "" || response.Sig == "" {
		return Token{}, fmt.Errorf("%s access token: response carries no token", kind)
	}

	return response.Token, nil
}
