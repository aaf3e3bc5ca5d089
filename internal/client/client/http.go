package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/tallerkeeper/internal/client/models"
	"github.com/dmitrijs2005/tallerkeeper/internal/common"
	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient returns a client for the API rooted at baseURL, e.g.
// "http://127.0.0.1:3000".
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: missing host", baseURL)
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type envelope struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	UserID  int64           `json:"userId"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, in any) (*envelope, error) {
	if in == nil {
		return c.send(ctx, method, path, nil)
	}
	b, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, method, path, b)
}

// send issues the request with body as the raw JSON payload, if any.
func (c *HTTPClient) send(ctx context.Context, method, path string, body []byte) (*envelope, error) {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, err.Error())
	}

	var env envelope
	decodeErr := json.Unmarshal(data, &env)

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message, Detail: env.Error}
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	return &env, nil
}

func decodeData[T any](env *envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, fmt.Errorf("decode response: missing data")
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

func equipmentPath(id int64) string {
	return "/equipos/" + strconv.FormatInt(id, 10)
}

func (c *HTTPClient) List(ctx context.Context) ([]*models.Equipment, error) {
	env, err := c.do(ctx, http.MethodGet, "/equipos", nil)
	if err != nil {
		return nil, err
	}
	return decodeData[[]*models.Equipment](env)
}

func (c *HTTPClient) Get(ctx context.Context, id int64) (*models.Equipment, error) {
	env, err := c.do(ctx, http.MethodGet, equipmentPath(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeData[*models.Equipment](env)
}

func (c *HTTPClient) Create(ctx context.Context, e *models.Equipment) (*models.Equipment, error) {
	env, err := c.do(ctx, http.MethodPost, "/equipos", e)
	if err != nil {
		return nil, err
	}
	return decodeData[*models.Equipment](env)
}

func (c *HTTPClient) Update(ctx context.Context, e *models.Equipment) (*models.Equipment, error) {
	env, err := c.do(ctx, http.MethodPut, equipmentPath(e.ID), e)
	if err != nil {
		return nil, err
	}
	return decodeData[*models.Equipment](env)
}

func (c *HTTPClient) Delete(ctx context.Context, id int64) error {
	_, err := c.do(ctx, http.MethodDelete, equipmentPath(id), nil)
	return err
}

type registerRequest struct {
	NombreUsuario *string `json:"nombreusuario"`
	Email         string  `json:"email"`
}

type loginRequest struct {
	Email string `json:"email"`
}

const hexDigits = "0123456789abcdef"

// appendJSONString appends s to dst as a quoted JSON string without going
// through an intermediate string value.
func appendJSONString(dst, s []byte) []byte {
	dst = append(dst, '"')
	for _, b := range s {
		switch {
		case b == '"' || b == '\\':
			dst = append(dst, '\\', b)
		case b < 0x20:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[b>>4], hexDigits[b&0xf])
		default:
			dst = append(dst, b)
		}
	}
	return append(dst, '"')
}

// credentialBody marshals fields, which must encode as a JSON object, and
// adds a "password" member built straight from the password bytes. The
// caller owns the result and should wipe it once the request is sent.
func credentialBody(fields any, password []byte) ([]byte, error) {
	head, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	if len(head) < 2 || head[0] != '{' || head[len(head)-1] != '}' {
		return nil, fmt.Errorf("credential fields must encode as an object")
	}

	body := make([]byte, 0, len(head)+6*len(password)+16)
	body = append(body, head[:len(head)-1]...)
	if len(head) > 2 {
		body = append(body, ',')
	}
	body = append(body, `"password":`...)
	body = appendJSONString(body, password)
	return append(body, '}'), nil
}

func (c *HTTPClient) sendCredentials(ctx context.Context, path string, fields any, password []byte) (*envelope, error) {
	body, err := credentialBody(fields, password)
	if err != nil {
		return nil, err
	}
	defer common.WipeByteArray(body)

	return c.send(ctx, http.MethodPost, path, body)
}

// Register creates an account and returns the new user id.
func (c *HTTPClient) Register(ctx context.Context, userName *string, email string, password []byte) (int64, error) {
	env, err := c.sendCredentials(ctx, "/register", registerRequest{NombreUsuario: userName, Email: email}, password)
	if err != nil {
		return 0, err
	}
	return env.UserID, nil
}

// Login checks the credentials. The server issues no session, so a nil
// error is the whole result.
func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) error {
	_, err := c.sendCredentials(ctx, "/login", loginRequest{Email: email}, password)
	return err
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", nil)
	return err
}
