// Package archive talks to the external historical-message store (a
// Supabase-style REST API) that backs the admin import pipeline.
package archive

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrNotFound reports that a handle has no account or profile in the store.
var ErrNotFound = errors.New("archive: not found")

// Message is one historical message owned by an external account.
type Message struct {
	ID        string    `json:"tweet_id"`
	AccountID string    `json:"account_id"`
	Text      string    `json:"full_text"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the public profile attached to an external account.
type Profile struct {
	AccountID string `json:"account_id"`
	Username  string `json:"username"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_media_url"`
}

type Client interface {
	AccountID(ctx context.Context, username string) (string, error)
	Profile(ctx context.Context, username string) (*Profile, error)
	// MessagesPage returns up to limit messages starting at offset. An empty
	// slice means the account's history is exhausted.
	MessagesPage(ctx context.Context, accountID string, offset, limit int) ([]Message, error)
}

type restClient struct {
	http *resty.Client
}

// NewClient builds a REST client for the archive store. The API key is sent
// both as the apikey header and as a bearer token, as the store expects.
func NewClient(baseURL, apiKey string, timeout time.Duration) Client {
	http := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey).
		SetTimeout(timeout)
	return &restClient{http: http}
}

type accountRow struct {
	AccountID string `json:"account_id"`
}

func (c *restClient) AccountID(ctx context.Context, username string) (string, error) {
	var rows []accountRow
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("select", "account_id").
		SetQueryParam("username", "eq."+strings.ToLower(username)).
		SetResult(&rows).
		Get("/rest/v1/account")
	if err != nil {
		return "", fmt.Errorf("fetch account %q: %w", username, err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch account %q: status %d", username, resp.StatusCode())
	}
	if len(rows) == 0 {
		return "", ErrNotFound
	}
	return rows[0].AccountID, nil
}

func (c *restClient) Profile(ctx context.Context, username string) (*Profile, error) {
	var rows []Profile
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("username", "eq."+strings.ToLower(username)).
		SetResult(&rows).
		Get("/rest/v1/profile")
	if err != nil {
		return nil, fmt.Errorf("fetch profile %q: %w", username, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch profile %q: status %d", username, resp.StatusCode())
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}
	return &rows[0], nil
}

func (c *restClient) MessagesPage(ctx context.Context, accountID string, offset, limit int) ([]Message, error) {
	var rows []Message
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("account_id", "eq."+accountID).
		SetQueryParam("order", "created_at.asc").
		SetHeader("Range-Unit", "items").
		SetHeader("Range", fmt.Sprintf("%d-%d", offset, offset+limit-1)).
		SetResult(&rows).
		Get("/rest/v1/tweets")
	if err != nil {
		return nil, fmt.Errorf("fetch messages for %s at %d: %w", accountID, offset, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch messages for %s at %d: status %d", accountID, offset, resp.StatusCode())
	}
	return rows, nil
}
