// Package twitch talks to the Twitch web endpoints needed to turn a broadcaster
// login or a video id into a master playlist, plus a little GraphQL metadata.
package twitch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/mo"
	"github.com/ttvcli/ttv/constant"
	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/network"
	"github.com/ttvcli/ttv/util"
)

var (
	// ErrOffline is returned when a live playlist is requested for a broadcaster who is not streaming.
	ErrOffline = errors.New("broadcaster is offline")
	// ErrNotFound is returned when the requested broadcaster or video does not exist.
	ErrNotFound = errors.New("not found")
)

// StatusError reports an unexpected HTTP status.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d %s", e.URL, e.Code, http.StatusText(e.Code))
}

// Kind distinguishes live broadcasts from archived videos.
type Kind int

const (
	Live Kind = iota
	VOD
)

func (k Kind) String() string {
	if k == VOD {
		return "vod"
	}
	return "live"
}

// Endpoints are the base URLs the client talks to. Tests point them at a local server.
type Endpoints struct {
	API     string
	Usher   string
	GraphQL string
}

// DefaultEndpoints returns the public Twitch endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		API:     constant.APIBaseURL,
		Usher:   constant.UsherBaseURL,
		GraphQL: constant.GraphQLURL,
	}
}

// Client performs Twitch requests. The zero value is not usable, see New.
type Client struct {
	HTTP      *http.Client
	ClientID  string
	OAuth     mo.Option[string]
	Endpoints Endpoints
}

// New returns a client using the shared HTTP client and the public endpoints.
func New(oauth mo.Option[string]) *Client {
	return &Client{
		HTTP:      network.Client,
		ClientID:  constant.ClientID,
		OAuth:     oauth,
		Endpoints: DefaultEndpoints(),
	}
}

func (c *Client) authorize(req *http.Request, header string) {
	req.Header.Set(header, c.ClientID)
	if token, ok := c.OAuth.Get(); ok {
		req.Header.Set("Authorization", "OAuth "+token)
	}
}

// get fetches target with query appended. The body is returned along with the
// status code so callers can map statuses onto domain errors.
func (c *Client) get(ctx context.Context, target string, query url.Values) ([]byte, int, error) {
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, err
	}
	c.authorize(req, "Client-ID")

	log.Debugf("GET %s", redact(target))
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer util.Ignore(resp.Body.Close)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

// redact strips the query string, which carries tokens and signatures.
func redact(target string) string {
	before, _, _ := strings.Cut(target, "?")
	return before
}

// ChatURL returns the popout chat page of login.
func ChatURL(login string) string {
	return fmt.Sprintf("https://www.twitch.tv/popout/%s/chat?popout=", url.PathEscape(strings.ToLower(strings.TrimSpace(login))))
}
