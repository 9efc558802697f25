package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// ProjectLister fetches the projects a user is a member of.
//
// @Summary Interface for the GitLab project-listing API
type ProjectLister interface {
	ListProjects(ctx context.Context, baseURL, version, accessToken string) (json.RawMessage, error)
}

// Client is the concrete GitLab API client. No retries; the HTTP client's
// own defaults govern timeouts.
type Client struct {
	HTTP *http.Client
}

// ensure Client implements ProjectLister
var _ ProjectLister = &Client{}

func NewClient() *Client {
	return &Client{HTTP: http.DefaultClient}
}

func (g *Client) ListProjects(ctx context.Context, baseURL, version, accessToken string) (json.RawMessage, error) {
	query := url.Values{
		"membership":   []string{"yes"},
		"per_page":     []string{"100"},
		"access_token": []string{accessToken},
	}
	listURL := fmt.Sprintf("%s/api/%s/projects?%s", baseURL, version, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, listURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("project listing returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}
