package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// 全レスポンス共通のenvelope
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price,string"`
	SupplierID  int64   `json:"supplier_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	SupplierID  int64   `json:"supplier_id"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
	Token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresAt   string `json:"expires_at"`
	} `json:"token"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bearer string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status want=%d got=%d body=%s", want, resp.StatusCode, string(body))
	}
}

func mustDecodeEnvelope(t *testing.T, body []byte) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("json.Unmarshal(Envelope) failed: %v body=%s", err, string(body))
	}
	return env
}

func mustDecodeProduct(t *testing.T, data json.RawMessage) Product {
	t.Helper()
	var p Product
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("json.Unmarshal(Product) failed: %v data=%s", err, string(data))
	}
	return p
}

func mustDecodeProducts(t *testing.T, data json.RawMessage) []Product {
	t.Helper()
	var items []Product
	if err := json.Unmarshal(data, &items); err != nil {
		t.Fatalf("json.Unmarshal([]Product) failed: %v data=%s", err, string(data))
	}
	return items
}

// 新規ユーザーを登録してログインし、access tokenを返す
func registerAndLogin(t *testing.T, c *TestClient, ctx context.Context) string {
	t.Helper()

	email := fmt.Sprintf("e2e-%d@example.com", time.Now().UnixNano())
	reqJSON, err := json.Marshal(RegisterRequest{Email: email, Password: "password123"})
	if err != nil {
		t.Fatalf("json.Marshal(RegisterRequest) failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/auth/register", "", reqJSON)
	requireStatus(t, resp, http.StatusOK, body)

	resp, body = c.doJSON(ctx, t, http.MethodPost, "/auth/login", "", reqJSON)
	requireStatus(t, resp, http.StatusOK, body)

	env := mustDecodeEnvelope(t, body)
	var login LoginResponse
	if err := json.Unmarshal(env.Data, &login); err != nil {
		t.Fatalf("json.Unmarshal(LoginResponse) failed: %v body=%s", err, string(body))
	}
	if login.Token.AccessToken == "" {
		t.Fatalf("empty access token: body=%s", string(body))
	}

	return login.Token.AccessToken
}

// シード済みDBから有効なsupplier_idを1つ拾う
func anySupplierID(t *testing.T, c *TestClient, ctx context.Context, access string) int64 {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/products", access, nil)
	requireStatus(t, resp, http.StatusOK, body)

	env := mustDecodeEnvelope(t, body)
	items := mustDecodeProducts(t, env.Data)
	if len(items) == 0 {
		t.Fatalf("no products in database: run cmd/seed first")
	}

	return items[0].SupplierID
}

func toStr(id int64) string {
	return strconv.FormatInt(id, 10)
}
