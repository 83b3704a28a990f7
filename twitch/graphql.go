package twitch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/ttvcli/ttv/constant"
	"github.com/ttvcli/ttv/log"
	"github.com/ttvcli/ttv/util"
)

// Stream describes a broadcaster's current live session.
type Stream struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Game        string `json:"game"`
	Viewers     int    `json:"viewers"`
	DisplayName string `json:"display_name"`
}

// Broadcast is an archived past broadcast.
type Broadcast struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
}

func (b Broadcast) String() string {
	return fmt.Sprintf("%s  %s", b.PublishedAt.Local().Format("2006-01-02 15:04"), b.Title)
}

type persistedQuery struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Extensions    struct {
		PersistedQuery struct {
			Version    int    `json:"version"`
			Sha256Hash string `json:"sha256Hash"`
		} `json:"persistedQuery"`
	} `json:"extensions"`
}

func newPersistedQuery(operation, hash string, variables map[string]any) persistedQuery {
	q := persistedQuery{OperationName: operation, Variables: variables}
	q.Extensions.PersistedQuery.Version = 1
	q.Extensions.PersistedQuery.Sha256Hash = hash
	return q
}

type gqlError struct {
	Message string `json:"message"`
}

// graphql posts a single persisted query as a one element batch and decodes
// the first result into out.
func (c *Client) graphql(ctx context.Context, query persistedQuery, out any) error {
	payload, err := json.Marshal([]persistedQuery{query})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoints.GraphQL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req, "Client-Id")

	log.Debugf("POST %s %s", c.Endpoints.GraphQL, query.OperationName)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", query.OperationName, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{URL: c.Endpoints.GraphQL, Code: resp.StatusCode}
	}

	var results []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return fmt.Errorf("%s: %w", query.OperationName, err)
	}
	if len(results) == 0 {
		return fmt.Errorf("%s: empty response", query.OperationName)
	}

	var envelope struct {
		Errors []gqlError `json:"errors"`
	}
	if err := json.Unmarshal(results[0], &envelope); err != nil {
		return fmt.Errorf("%s: %w", query.OperationName, err)
	}
	if len(envelope.Errors) > 0 {
		messages := lo.Map(envelope.Errors, func(e gqlError, _ int) string { return e.Message })
		return fmt.Errorf("%s: %s", query.OperationName, strings.Join(messages, "; "))
	}

	return json.Unmarshal(results[0], out)
}

type channelRootResponse struct {
	Data struct {
		User *struct {
			DisplayName string `json:"displayName"`
			Stream      *struct {
				ID    string `json:"id"`
				Title string `json:"title"`
				Game  *struct {
					DisplayName string `json:"displayName"`
				} `json:"game"`
				ViewersCount int `json:"viewersCount"`
			} `json:"stream"`
		} `json:"user"`
	} `json:"data"`
}

// StreamInfo returns the current stream of login. It is None when the
// broadcaster exists but has no stream details, which can happen even while
// a playlist is being served.
func (c *Client) StreamInfo(ctx context.Context, login string) (mo.Option[Stream], error) {
	var response channelRootResponse
	err := c.graphql(ctx, newPersistedQuery(constant.ChannelRootOperation, constant.ChannelRootQueryHash, map[string]any{
		"currentChannelLogin": login,
		"includeChanlets":     true,
	}), &response)
	if err != nil {
		return mo.None[Stream](), err
	}

	user := response.Data.User
	if user == nil {
		return mo.None[Stream](), fmt.Errorf("broadcaster %s: %w", login, ErrNotFound)
	}
	if user.Stream == nil {
		return mo.None[Stream](), nil
	}

	stream := Stream{
		ID:          user.Stream.ID,
		Title:       user.Stream.Title,
		Viewers:     user.Stream.ViewersCount,
		DisplayName: user.DisplayName,
	}
	if user.Stream.Game != nil {
		stream.Game = user.Stream.Game.DisplayName
	}

	return mo.Some(stream), nil
}

type videoEdge struct {
	Node struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"node"`
}

type videoTowerResponse struct {
	Data struct {
		User *struct {
			Videos struct {
				Edges []videoEdge `json:"edges"`
			} `json:"videos"`
		} `json:"user"`
	} `json:"data"`
}

// Broadcasts lists up to limit archived broadcasts of login, newest first.
func (c *Client) Broadcasts(ctx context.Context, login string, limit int) ([]Broadcast, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit %d", limit)
	}

	var response videoTowerResponse
	err := c.graphql(ctx, newPersistedQuery(constant.VideoTowerOperation, constant.VideoTowerQueryHash, map[string]any{
		"limit":             limit,
		"channelOwnerLogin": login,
		"broadcastType":     "ARCHIVE",
		"videoSort":         "TIME",
	}), &response)
	if err != nil {
		return nil, err
	}

	if response.Data.User == nil {
		return nil, fmt.Errorf("broadcaster %s: %w", login, ErrNotFound)
	}

	return lo.Map(response.Data.User.Videos.Edges, func(edge videoEdge, _ int) Broadcast {
		return Broadcast{ID: edge.Node.ID, Title: edge.Node.Title, PublishedAt: edge.Node.PublishedAt}
	}), nil
}
