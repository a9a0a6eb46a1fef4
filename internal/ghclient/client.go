// Package ghclient wraps the GitHub REST API for pull request triage.
package ghclient

import (
	"context"
	"fmt"
	"os"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the go-github client.
type Client struct {
	client *github.Client
}

// NewClient creates a GitHub client using a personal access token. Falls
// back to the GITHUB_TOKEN environment variable when token is empty.
func NewClient(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return nil, fmt.Errorf("GitHub token not provided. Set GITHUB_TOKEN or add token to the config file")
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)

	return &Client{client: github.NewClient(tc)}, nil
}

// CurrentUser returns the authenticated user's login.
func (c *Client) CurrentUser(ctx context.Context) (string, error) {
	user, _, err := c.client.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("failed to get authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

// RawClient returns the underlying go-github client.
func (c *Client) RawClient() *github.Client {
	return c.client
}
