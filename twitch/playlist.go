package twitch

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ttvcli/ttv/log"
)

// cacheBuster returns the random seven digit "p" parameter sent to usher.
func cacheBuster() string {
	return strconv.Itoa(1_000_000 + rand.IntN(9_000_000))
}

func (c *Client) playlistRequest(kind Kind, id string, token Token) (string, url.Values) {
	if kind == VOD {
		return fmt.Sprintf("%s/vod/%s.m3u8", c.Endpoints.Usher, url.PathEscape(id)), url.Values{
			"nauth":         {token.Token},
			"nauthsig":      {token.Sig},
			"allow_source":  {"true"},
			"allow_spectre": {"true"},
			"p":             {cacheBuster()},
			"baking_bread":  {"true"},
		}
	}

	return fmt.Sprintf("%s/api/channel/hls/%s.m3u8", c.Endpoints.Usher, url.PathEscape(id)), url.Values{
		"token":          {token.Token},
		"sig":            {token.Sig},
		"allow_source":   {"true"},
		"player_backend": {"html5"},
		"baking_bread":   {"true"},
		"p":              {cacheBuster()},
	}
}

// Playlist downloads the master playlist text for id using token.
func (c *Client) Playlist(ctx context.Context, kind Kind, id string, token Token) (string, error) {
	target, query := c.playlistRequest(kind, id, token)

	log.Infof("fetching %s playlist for %s", kind, id)
	body, status, err := c.get(ctx, target, query)
	if err != nil {
		return "", fmt.Errorf("%s playlist: %w", kind, err)
	}

	switch status {
	case http.StatusOK:
		return string(body), nil
	case http.StatusNotFound:
		if kind == Live {
			return "", fmt.Errorf("%s: %w", id, ErrOffline)
		}
		return "", fmt.Errorf("video %s: %w", id, ErrNotFound)
	default:
		return "", &StatusError{URL: target, Code: status}
	}
}

// Manifest exchanges a token and downloads the playlist in one go.
func (c *Client) Manifest(ctx context.Context, kind Kind, id string) (string, error) {
	token, err := c.AccessToken(ctx, kind, id)
	if err != nil {
		return "", err
	}
	return c.Playlist(ctx, kind, id, token)
}
