package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	authURL = "https://github.com/login/oauth/access_token"
	gistURL = "https://api.github.com/gists"
)

// CodeExchanger swaps an OAuth callback code for an access token.
//
// @Summary Interface for the GitHub OAuth code exchange
type CodeExchanger interface {
	ExchangeCode(ctx context.Context, code, state string) (string, error)
}

// GistCreator publishes a single-file gist and returns its public URL.
//
// @Summary Interface for GitHub gist creation
type GistCreator interface {
	CreateGist(ctx context.Context, accessToken, filename, content string) (string, error)
}

// Client is the concrete GitHub API client behind both adapter interfaces.
// Requests rely on the HTTP client's own defaults; this layer adds no
// retries or timeouts of its own.
type Client struct {
	ClientID     string
	ClientSecret string
	HTTP         *http.Client
}

// ensure Client implements both adapters
var _ CodeExchanger = &Client{}
var _ GistCreator = &Client{}

// NewClient builds a Client around http.DefaultClient.
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTP:         http.DefaultClient,
	}
}

func (g *Client) ExchangeCode(ctx context.Context, code, state string) (string, error) {
	payload, err := json.Marshal(map[string]string{
		"client_id":     g.ClientID,
		"client_secret": g.ClientSecret,
		"code":          code,
		"state":         state,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.AccessToken == "" {
		return "", fmt.Errorf("token exchange returned no access token")
	}
	return body.AccessToken, nil
}

func (g *Client) CreateGist(ctx context.Context, accessToken, filename, content string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"files": map[string]any{
			filename: map[string]string{"content": content},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, gistURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "NoteHub")
	req.Header.Set("Authorization", "token "+accessToken)

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("gist creation returned status %d", resp.StatusCode)
	}

	var body struct {
		HTMLURL string `json:"html_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	return body.HTMLURL, nil
}
