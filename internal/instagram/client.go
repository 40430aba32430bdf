package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultOAuthEndpoint = "https://api.instagram.com/oauth/access_token"
	defaultGraphEndpoint = "https://graph.instagram.com/me/media"
	authorizeEndpoint    = "https://api.instagram.com/oauth/authorize"

	mediaFields = "id,media_url,media_type,caption,timestamp,permalink"
	mediaLimit  = "20"
)

// Client talks to the Instagram Basic Display API. The OAuth dance stays
// minimal: one code-for-token exchange, no refresh flow.
type Client struct {
	appID       string
	appSecret   string
	redirectURI string

	oauthEndpoint string
	graphEndpoint string
	httpClient    *http.Client
}

func NewClient(appID, appSecret, redirectURI string) *Client {
	if strings.TrimSpace(appID) == "" || strings.TrimSpace(appSecret) == "" || strings.TrimSpace(redirectURI) == "" {
		return nil
	}
	return &Client{
		appID:         appID,
		appSecret:     appSecret,
		redirectURI:   redirectURI,
		oauthEndpoint: defaultOAuthEndpoint,
		graphEndpoint: defaultGraphEndpoint,
		httpClient:    &http.Client{Timeout: 8 * time.Second},
	}
}

func (c *Client) AuthURL() string {
	params := url.Values{}
	params.Set("client_id", c.appID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("scope", "user_profile,user_media")
	params.Set("response_type", "code")
	return authorizeEndpoint + "?" + params.Encode()
}

type exchangeResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (c *Client) ExchangeCode(ctx context.Context, code string) (string, string, error) {
	form := url.Values{}
	form.Set("client_id", c.appID)
	form.Set("client_secret", c.appSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.redirectURI)
	form.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.oauthEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", "", fmt.Errorf("instagram create request: %w", err)
	}
	req.Header.Set("content-type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("instagram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", "", fmt.Errorf("instagram token exchange failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out exchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", "", fmt.Errorf("instagram decode response: %w", err)
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return "", "", fmt.Errorf("instagram response missing access_token")
	}
	tokenType := out.TokenType
	if tokenType == "" {
		tokenType = "bearer"
	}
	return out.AccessToken, tokenType, nil
}

type mediaResponse struct {
	Data []Post `json:"data"`
}

func (c *Client) FetchMedia(ctx context.Context, accessToken string) ([]Post, error) {
	params := url.Values{}
	params.Set("fields", mediaFields)
	params.Set("access_token", accessToken)
	params.Set("limit", mediaLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.graphEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("instagram create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("instagram request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("instagram media fetch failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out mediaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("instagram decode response: %w", err)
	}

	posts := make([]Post, 0, len(out.Data))
	for _, post := range out.Data {
		if post.MediaType == "IMAGE" || post.MediaType == "VIDEO" {
			posts = append(posts, post)
		}
	}
	return posts, nil
}
