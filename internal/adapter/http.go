package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-user-posts/models"
	"github.com/go-resty/resty/v2"
)

const (
	defaultBaseURL = "http://localhost:8989"
	defaultTimeout = 15 * time.Second

	requestTokenHeader = "X-Request-Token"
)

// HTTPClientConfig configures [NewHTTPAPIClient].
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
	// RequestToken, when set, is sent with every request and echoed back by
	// the server.
	RequestToken string
}

// envelope is the wire form of models.Envelope with the result left raw.
type envelope struct {
	RequestToken *string         `json:"requestToken"`
	Message      string          `json:"message"`
	Error        string          `json:"error"`
	Result       json.RawMessage `json:"result"`
}

type httpAPIClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPAPIClient constructs an HTTP/REST implementation of [APIClient].
func NewHTTPAPIClient(cfg HTTPClientConfig) APIClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.RequestToken != "" {
		cli.SetHeader(requestTokenHeader, cfg.RequestToken)
	}

	return &httpAPIClient{client: cli}
}

func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Version(ctx context.Context) (string, error) {
	var result struct {
		Version string `json:"version"`
	}
	if err := h.do(h.request(ctx), resty.MethodGet, "/api/version", &result); err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	return result.Version, nil
}

func (h *httpAPIClient) Register(ctx context.Context, payload models.UserPayload) (models.User, error) {
	var user models.User
	if err := h.do(h.request(ctx).SetBody(payload), resty.MethodPost, "/api/auth/register", &user); err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	return user, nil
}

func (h *httpAPIClient) Login(ctx context.Context, email, password string) (models.Token, error) {
	credentials := models.Credentials{Email: &email, Password: &password}

	var token models.Token
	if err := h.do(h.request(ctx).SetBody(credentials), resty.MethodPost, "/api/auth/login", &token); err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}

	h.SetToken(token.SignedString)
	return token, nil
}

func (h *httpAPIClient) Logout(ctx context.Context) error {
	if err := h.do(h.authedRequest(ctx), resty.MethodPost, "/api/auth/logout", nil); err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	h.SetToken("")
	return nil
}

func (h *httpAPIClient) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	req := h.authedRequest(ctx).SetQueryParams(nonEmpty(map[string]string{
		"search":    filter.Search,
		"status":    filter.Status,
		"user_type": filter.UserType,
	}))

	var result models.ListResult[models.User]
	if err := h.do(req, resty.MethodGet, "/api/users", &result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list users request: %w", err)
	}
	return result.Rows, nil
}

func (h *httpAPIClient) GetUser(ctx context.Context, id string) (models.User, error) {
	var user models.User
	if err := h.do(h.authedRequest(ctx).SetPathParam("id", id), resty.MethodGet, "/api/users/{id}", &user); err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	return user, nil
}

func (h *httpAPIClient) CreateUser(ctx context.Context, payload models.UserPayload) (models.User, error) {
	var user models.User
	if err := h.do(h.authedRequest(ctx).SetBody(payload), resty.MethodPost, "/api/users", &user); err != nil {
		return models.User{}, fmt.Errorf("create user request: %w", err)
	}
	return user, nil
}

func (h *httpAPIClient) UpdateUser(ctx context.Context, id string, payload models.UserPayload) (models.User, error) {
	req := h.authedRequest(ctx).SetPathParam("id", id).SetBody(payload)

	var user models.User
	if err := h.do(req, resty.MethodPatch, "/api/users/{id}", &user); err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	return user, nil
}

func (h *httpAPIClient) DeleteUser(ctx context.Context, id string) error {
	if err := h.do(h.authedRequest(ctx).SetPathParam("id", id), resty.MethodDelete, "/api/users/{id}", nil); err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	return nil
}

func (h *httpAPIClient) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	req := h.authedRequest(ctx).SetQueryParams(nonEmpty(map[string]string{
		"search":       filter.Search,
		"is_published": filter.IsPublished,
		"status":       filter.Status,
		"user":         filter.UserID,
	}))

	var result models.ListResult[models.Post]
	if err := h.do(req, resty.MethodGet, "/api/posts", &result); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list posts request: %w", err)
	}
	return result.Rows, nil
}

func (h *httpAPIClient) GetPost(ctx context.Context, id string) (models.Post, error) {
	var post models.Post
	if err := h.do(h.request(ctx).SetPathParam("id", id), resty.MethodGet, "/api/posts/{id}", &post); err != nil {
		return models.Post{}, fmt.Errorf("get post request: %w", err)
	}
	return post, nil
}

func (h *httpAPIClient) CreatePost(ctx context.Context, payload models.PostPayload) (models.Post, error) {
	var post models.Post
	if err := h.do(h.request(ctx).SetBody(payload), resty.MethodPost, "/api/posts", &post); err != nil {
		return models.Post{}, fmt.Errorf("create post request: %w", err)
	}
	return post, nil
}

func (h *httpAPIClient) UpdatePost(ctx context.Context, id string, payload models.PostPayload) (models.Post, error) {
	req := h.authedRequest(ctx).SetPathParam("id", id).SetBody(payload)

	var post models.Post
	if err := h.do(req, resty.MethodPut, "/api/posts/{id}", &post); err != nil {
		return models.Post{}, fmt.Errorf("update post request: %w", err)
	}
	return post, nil
}

func (h *httpAPIClient) DeletePost(ctx context.Context, id string) error {
	if err := h.do(h.authedRequest(ctx).SetPathParam("id", id), resty.MethodDelete, "/api/posts/{id}", nil); err != nil {
		return fmt.Errorf("delete post request: %w", err)
	}
	return nil
}

func (h *httpAPIClient) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do executes req and decodes the envelope result into result, which may be
// nil when the result is not needed.
func (h *httpAPIClient) do(req *resty.Request, method, url string, result any) error {
	resp, err := req.Execute(method, url)
	if err != nil {
		return err
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}
	if result == nil {
		return nil
	}

	var env envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return fmt.Errorf("decode response envelope: %w", err)
	}
	if err = json.Unmarshal(env.Result, result); err != nil {
		return fmt.Errorf("decode response result: %w", err)
	}
	return nil
}

func nonEmpty(params map[string]string) map[string]string {
	for k, v := range params {
		if v == "" {
			delete(params, k)
		}
	}
	return params
}
