// Package linkedin is a typed client for the three LinkedIn REST calls
// the poster needs: OAuth token exchange, userinfo, and UGC post creation.
package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	fhttp "github.com/bogdanfinn/fhttp"
	tls_client "github.com/bogdanfinn/tls-client"
	"github.com/bogdanfinn/tls-client/profiles"

	"linkedin-auto-poster/config"
	apperrors "linkedin-auto-poster/pkg/errors"
)

const requestTimeoutSeconds = 30

type Client struct {
	http   tls_client.HttpClient
	cfg    *config.LinkedIn
	logger *slog.Logger
}

// UserInfo is the OpenID userinfo record. Sub identifies the member and
// becomes the author URN of published posts.
type UserInfo struct {
	Sub        string `json:"sub"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Email      string `json:"email"`
	Picture    string `json:"picture"`
}

// PostResult is the confirmation returned after a UGC post is created.
type PostResult struct {
	ID string `json:"id"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type ugcPostRequest struct {
	Author          string          `json:"author"`
	LifecycleState  string          `json:"lifecycleState"`
	SpecificContent specificContent `json:"specificContent"`
	Visibility      visibility      `json:"visibility"`
}

type specificContent struct {
	ShareContent shareContent `json:"com.linkedin.ugc.ShareContent"`
}

type shareContent struct {
	ShareCommentary    shareCommentary `json:"shareCommentary"`
	ShareMediaCategory string          `json:"shareMediaCategory"`
}

type shareCommentary struct {
	Text string `json:"text"`
}

type visibility struct {
	MemberNetworkVisibility string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
}

func New(cfg *config.LinkedIn, logger *slog.Logger) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("linkedin config is nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	httpClient, err := tls_client.NewHttpClient(tls_client.NewNoopLogger(),
		tls_client.WithTimeoutSeconds(requestTimeoutSeconds),
		tls_client.WithClientProfile(profiles.DefaultClientProfile),
	)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	return &Client{http: httpClient, cfg: cfg, logger: logger}, nil
}

// ExchangeCode trades an OAuth authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	if code == "" {
		return "", apperrors.New(apperrors.KindInputValidation, "authorization code is required")
	}

	form := url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"redirect_uri":  {c.cfg.RedirectURI},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodPost,
		c.cfg.APIURL+"/oauth/v2/accessToken", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body, err := c.do(req)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.KindAuthentication, "token exchange failed")
	}
	if status/100 != 2 {
		return "", apperrors.Newf(apperrors.KindAuthentication,
			"token exchange failed (status %d): %s", status, body)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", apperrors.Wrap(err, apperrors.KindAuthentication, "decode token response")
	}
	if token.AccessToken == "" {
		return "", apperrors.New(apperrors.KindAuthentication, "access token not found in response")
	}

	return token.AccessToken, nil
}

// UserInfo fetches the authenticated member's userinfo record.
func (c *Client) UserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	if accessToken == "" {
		return nil, apperrors.New(apperrors.KindInputValidation, "access token is required")
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet,
		c.cfg.APIURL+"/v2/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("build userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	status, body, err := c.do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindAuthentication, "userinfo request failed")
	}
	if status/100 != 2 {
		return nil, apperrors.Newf(apperrors.KindAuthentication,
			"userinfo request failed (status %d): %s", status, body)
	}

	var info UserInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindAuthentication, "decode userinfo response")
	}
	if info.Sub == "" {
		return nil, apperrors.New(apperrors.KindAuthentication, "userinfo response has no sub identifier")
	}

	return &info, nil
}

// CreatePost publishes a public text-only UGC post as the given member.
func (c *Client) CreatePost(ctx context.Context, accessToken, authorID, text string) (*PostResult, error) {
	if accessToken == "" || authorID == "" || text == "" {
		return nil, apperrors.New(apperrors.KindInputValidation,
			"access token, author ID, and text are all required")
	}

	payload := ugcPostRequest{
		Author:         "urn:li:person:" + authorID,
		LifecycleState: "PUBLISHED",
		SpecificContent: specificContent{
			ShareContent: shareContent{
				ShareCommentary:    shareCommentary{Text: text},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: visibility{MemberNetworkVisibility: "PUBLIC"},
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal ugc post: %w", err)
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodPost,
		c.cfg.APIURL+"/v2/ugcPosts", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build ugc post request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	status, body, err := c.do(req)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.KindPostCreation, "ugc post request failed")
	}
	if status/100 != 2 {
		return nil, apperrors.Newf(apperrors.KindPostCreation,
			"ugc post failed (status %d): %s", status, body)
	}

	var result PostResult
	if len(body) > 0 {
		if err := json.Unmarshal(body, &result); err != nil {
			return nil, apperrors.Wrap(err, apperrors.KindPostCreation, "decode ugc post response")
		}
	}

	return &result, nil
}

func (c *Client) do(req *fhttp.Request) (int, []byte, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	c.logger.Debug("linkedin request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	return resp.StatusCode, body, nil
}
