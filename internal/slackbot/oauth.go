package slackbot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/slack-go/slack"
)

// OAuthResult is the workspace identity returned by a token exchange.
type OAuthResult struct {
	TeamID      string
	TeamName    string
	AccessToken string
}

// TokenExchanger trades an authorization code for a workspace access token.
type TokenExchanger interface {
	ExchangeCode(ctx context.Context, code string) (OAuthResult, error)
}

type SlackTokenExchanger struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
}

type TokenExchangerDependencies struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	HTTPClient   *http.Client
}

func NewTokenExchanger(deps TokenExchangerDependencies) *SlackTokenExchanger {
	httpClient := deps.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &SlackTokenExchanger{
		clientID:     deps.ClientID,
		clientSecret: deps.ClientSecret,
		redirectURI:  deps.RedirectURI,
		httpClient:   httpClient,
	}
}

func (e *SlackTokenExchanger) ExchangeCode(ctx context.Context, code string) (OAuthResult, error) {
	response, err := slack.GetOAuthV2ResponseContext(ctx, e.httpClient, e.clientID, e.clientSecret, code, e.redirectURI)
	if err != nil {
		return OAuthResult{}, fmt.Errorf("slack oauth exchange failed: %w", err)
	}

	if response.Team.ID == "" || response.AccessToken == "" {
		return OAuthResult{}, fmt.Errorf("slack oauth exchange returned no workspace token")
	}

	return OAuthResult{
		TeamID:      response.Team.ID,
		TeamName:    response.Team.Name,
		AccessToken: response.AccessToken,
	}, nil
}
