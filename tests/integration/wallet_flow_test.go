package integration

import (
	"bytes"
	"crypto/ed25519"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticket-wallet-service/config"
	httpHandler "ticket-wallet-service/internal/adapter/http/handler"
	redisStorage "ticket-wallet-service/internal/adapter/storage/redis"
	"ticket-wallet-service/internal/service"
	"ticket-wallet-service/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/mr-tron/base58"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack end-to-end: real HTTP layer,
// middleware, handlers, services, and Redis stores backed by miniredis, with
// in-memory postgres repos underneath.

const (
	testJWTSecret = "integration-test-secret-32bytes!"
	nonceTTL      = 5 * time.Minute
)

type testApp struct {
	server     *httptest.Server
	redis      *miniredis.Miniredis
	tokenSvc   *service.JWTTokenService
	walletRepo *inMemoryWalletRepo
	auditRepo  *inMemoryAuditRepo
}

func generousRateLimit() config.RateLimitConfig {
	return config.RateLimitConfig{
		UserLimit:  1000,
		UserWindow: time.Minute,
		IPLimit:    1000,
		IPWindow:   time.Minute,
	}
}

func newTestApp(t *testing.T, rl config.RateLimitConfig) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	log := logger.New("error", false)

	nonceStore := redisStorage.NewNonceStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	walletRepo := newInMemoryWalletRepo()
	auditRepo := newInMemoryAuditRepo()
	transactor := newInMemoryTransactor()

	tokenSvc := service.NewJWTTokenService(testJWTSecret, time.Hour, "test-issuer")
	verifier := service.NewEd25519Verifier(log)
	nonceSvc := service.NewNonceService(nonceStore, nonceTTL, log)
	rateLimiter := service.NewConnectionRateLimiter(rateLimitStore, rl, log)

	walletSvc := service.NewWalletService(walletRepo, auditRepo, nonceSvc, verifier, rateLimiter, transactor, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		WalletSvc: walletSvc,
		TokenSvc:  tokenSvc,
		Logger:    log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		mr.Close()
	})

	return &testApp{
		server:     server,
		redis:      mr,
		tokenSvc:   tokenSvc,
		walletRepo: walletRepo,
		auditRepo:  auditRepo,
	}
}

func (a *testApp) token(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, _, err := a.tokenSvc.Generate(userID)
	require.NoError(t, err)
	return token
}

func (a *testApp) do(t *testing.T, method, path, token, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, a.server.URL+path, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	if out != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, out))
	}
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var envelope struct {
		ErrorCode string `json:"error_code"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.ErrorCode
}

func walletKeypair(t *testing.T) (string, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)
	return base58.Encode(pub), priv
}

type nonceData struct {
	Nonce   string `json:"nonce"`
	Message string `json:"message"`
}

func (a *testApp) issueNonce(t *testing.T, token string) nonceData {
	t.Helper()
	resp := a.do(t, http.MethodPost, "/api/v1/wallets/nonce", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var nd nonceData
	decodeData(t, resp, &nd)
	return nd
}

func connectBody(addr string, priv ed25519.PrivateKey, nd nonceData) string {
	sig := base64.StdEncoding.EncodeToString(ed25519.Sign(priv, []byte(nd.Message)))
	raw, _ := json.Marshal(map[string]string{
		"address":   addr,
		"signature": sig,
		"nonce":     nd.Nonce,
	})
	return string(raw)
}

// connect runs the full issue-sign-connect handshake for the wallet.
func (a *testApp) connect(t *testing.T, token, addr string, priv ed25519.PrivateKey) *http.Response {
	t.Helper()
	nd := a.issueNonce(t, token)
	return a.do(t, http.MethodPost, "/api/v1/wallets/connect", token, connectBody(addr, priv, nd))
}

// --- Lifecycle flows ---

func TestWalletConnectFlow(t *testing.T) {
	app := newTestApp(t, generousRateLimit())
	userID := uuid.New()
	token := app.token(t, userID)
	addr, priv := walletKeypair(t)

	resp := app.connect(t, token, addr, priv)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Status string `json:"status"`
		Wallet struct {
			Address   string `json:"address"`
			IsPrimary bool   `json:"is_primary"`
		} `json:"wallet"`
	}
	decodeData(t, resp, &result)
	assert.Equal(t, "connected", result.Status)
	assert.Equal(t, addr, result.Wallet.Address)
	assert.True(t, result.Wallet.IsPrimary)

	// Listed as the sole active wallet.
	resp = app.do(t, http.MethodGet, "/api/v1/wallets", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var wallets []json.RawMessage
	decodeData(t, resp, &wallets)
	assert.Len(t, wallets, 1)

	// And reported as the primary one.
	resp = app.do(t, http.MethodGet, "/api/v1/wallets/primary", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var primary struct {
		Address string `json:"address"`
	}
	decodeData(t, resp, &primary)
	assert.Equal(t, addr, primary.Address)

	// Ownership check passes.
	resp = app.do(t, http.MethodPost, "/api/v1/wallets/verify", token, fmt.Sprintf(`{"address":%q}`, addr))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var owned struct {
		Owned bool `json:"owned"`
	}
	decodeData(t, resp, &owned)
	assert.True(t, owned.Owned)

	// One CONNECT record in the trail.
	resp = app.do(t, http.MethodGet, "/api/v1/wallets/history", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []struct {
		ConnectionType string `json:"connection_type"`
	}
	decodeData(t, resp, &history)
	require.Len(t, history, 1)
	assert.Equal(t, "CONNECT", history[0].ConnectionType)
}

func TestNonceReplayRejected(t *testing.T) {
	app := newTestApp(t, generousRateLimit())
	userID := uuid.New()
	token := app.token(t, userID)
	addr, priv := walletKeypair(t)

	nd := app.issueNonce(t, token)
	body := connectBody(addr, priv, nd)

	resp := app.do(t, http.MethodPost, "/api/v1/wallets/connect", token, body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Byte-identical replay: the nonce is gone.
	resp = app.do(t, http.MethodPost, "/api/v1/wallets/connect", token, body)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "WALLET_CONNECTION_FAILED", errorCode(t, resp))
}

func TestFailedSignatureStillConsumesNonce(t *testing.T) {
	app := newTestApp(t, generousRateLimit())
	userID := uuid.New()
	token := app.token(t, userID)
	addr, priv := walletKeypair(t)

	nd := app.issueNonce(t, token)

	// Sign the wrong message.
	badSig := base64.StdEncoding.EncodeToString(ed25519.Sign(priv, []byte("some other message")))
	raw, _ := json.Marshal(map[string]string{"address": addr, "signature": badSig, "nonce": nd.Nonce})
	resp := app.do(t, http.MethodPost, "/api/v1/wallets/connect", token, string(raw))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "WALLET_AUTH_FAILED", errorCode(t, resp))

	// A correct signature over the same nonce no longer helps.
	resp = app.do(t, http.MethodPost, "/api/v1/wallets/connect", token, connectBody(addr, priv, nd))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "WALLET_CONNECTION_FAILED", errorCode(t, resp))
}

func TestNonceExpiry(t *testing.T) {
	app := newTestApp(t, generousRateLimit())
	userID := uuid.New()
	token := app.token(t, userID)
	addr, priv := walletKeypair(t)

	nd := app.issueNonce(t, token)
	app.redis.FastForward(nonceTTL + time.Second)

	resp := app.do(t, http.MethodPost, "/api/v1/wallets/connect", token, connectBody(addr, priv, nd))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "WALLET_CONNECTION_FAILED", errorCode(t, resp))
}

func TestSecondWalletBecomesPrimary(t *testing.T) {
	app := newTestApp(t, generousRateLimit())
	userID := uuid.New()
	token := app.token(t, userID)
	addrA, privA := walletKeypair(t)
	addrB, privB := walletKeypair(t)

	resp := app.connect(t, token, addrA, privA)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.connect(t, token, addrB, privB)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	assert.Equal(t, 1, app.walletRepo.countPrimary(userID))

	resp = app.do(t, http.MethodGet, "/api/v1/wallets/primary", token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var primary struct {
		Address string `json:"address"`
	}
	decodeData(t, resp, &primary)
	assert.Equal(t, addrB, primary.Address)
}

func TestReconnectRefreshesExistingWallet(t *testing.T) {
	app := newTestApp(t, generousRateLimit())
	userID := uuid.New()
	token := app.token(t, userID)
	addr, priv := walletKeypair(t)

	resp := app.connect(t, token, addr, priv)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.connect(t, token, addr, priv)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var result struct {
		Status string `json:"status"`
	}
	decodeData(t, resp, &result)
	assert.Equal(t, "reconnected", result.Status)

	// Still a single row for the pair.
	resp = app.do(t, http.MethodGet, "/api/v1/wallets", token, "")
	var wallets []json.RawMessage
	decodeData(t, resp, &wallets)
	assert.Len(t, wallets, 1)
}

func TestDisconnectPromotesOldestRemaining(t *testing.T) {
	app := newTestApp(t, generousRateLimit())
	userID := uuid.New()
	token := app.token(t, userID)
	addrA, privA := walletKeypair(t)
	addrB, privB := walletKeypair(t)

	app.connect(t, token, addrA, privA).Body.Close()
	time.Sleep(5 * time.Millisecond) // distinct created_at ordering
	app.connect(t, token, addrB, privB).Body.Close()

	// B holds the primary flag; disconnecting it hands the flag to A.
	resp := app.do(t, http.MethodPost, "/api/v1/wallets/disconnect", token,
		fmt.Sprintf(`{"address":%q,"reason":"rotating keys"}`, addrB))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var dis struct {
		Disconnected bool `json:"disconnected"`
	}
	decodeData(t, resp, &dis)
	assert.True(t, dis.Disconnected)

	resp = app.do(t, http.MethodGet, "/api/v1/wallets/primary", token, "")
	var primary struct {
		Address string `json:"address"`
	}
	decodeData(t, resp, &primary)
	assert.Equal(t, addrA, primary.Address)
	assert.Equal(t, 1, app.walletRepo.countPrimary(userID))

	// Disconnecting again finds nothing.
	resp = app.do(t, http.MethodPost, "/api/v1/wallets/disconnect", token,
		fmt.Sprintf(`{"address":%q}`, addrB))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &dis)
	assert.False(t, dis.Disconnected)
}

func TestRestoreFlow(t *testing.T) {
	app := newTestApp(t, generousRateLimit())
	userID := uuid.New()
	token := app.token(t, userID)
	addrA, privA := walletKeypair(t)
	addrB, privB := walletKeypair(t)

	app.connect(t, token, addrA, privA).Body.Close()
	app.connect(t, token, addrB, privB).Body.Close()

	resp := app.do(t, http.MethodPost, "/api/v1/wallets/disconnect", token, fmt.Sprintf(`{"address":%q}`, addrA))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Gone from the active listing, present in the administrative one.
	resp = app.do(t, http.MethodGet, "/api/v1/wallets", token, "")
	var active []json.RawMessage
	decodeData(t, resp, &active)
	assert.Len(t, active, 1)

	resp = app.do(t, http.MethodGet, "/api/v1/wallets?include_deleted=true", token, "")
	var all []json.RawMessage
	decodeData(t, resp, &all)
	assert.Len(t, all, 2)

	// Restore without a signature ceremony; B stays primary.
	resp = app.do(t, http.MethodPost, "/api/v1/wallets/restore", token, fmt.Sprintf(`{"address":%q}`, addrA))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var restored struct {
		Restored bool `json:"restored"`
		Wallet   *struct {
			IsPrimary bool `json:"is_primary"`
		} `json:"wallet"`
	}
	decodeData(t, resp, &restored)
	assert.True(t, restored.Restored)
	require.NotNil(t, restored.Wallet)
	assert.False(t, restored.Wallet.IsPrimary)

	assert.Equal(t, 1, app.walletRepo.countPrimary(userID))

	// A second restore attempt is a no-op.
	resp = app.do(t, http.MethodPost, "/api/v1/wallets/restore", token, fmt.Sprintf(`{"address":%q}`, addrA))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &restored)
	assert.False(t, restored.Restored)
}

func TestHistoryAddressFilter(t *testing.T) {
	app := newTestApp(t, generousRateLimit())
	userID := uuid.New()
	token := app.token(t, userID)
	addrA, privA := walletKeypair(t)
	addrB, privB := walletKeypair(t)

	app.connect(t, token, addrA, privA).Body.Close()
	app.connect(t, token, addrB, privB).Body.Close()

	resp := app.do(t, http.MethodGet, "/api/v1/wallets/history?address="+addrA, token, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var history []struct {
		Address string `json:"address"`
	}
	decodeData(t, resp, &history)
	require.Len(t, history, 1)
	assert.Equal(t, addrA, history[0].Address)
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	app := newTestApp(t, generousRateLimit())

	resp := app.do(t, http.MethodPost, "/api/v1/wallets/nonce", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "AUTH_INVALID_TOKEN", errorCode(t, resp))
}

// --- Rate limiting ---

func TestConnectionRateLimit(t *testing.T) {
	app := newTestApp(t, config.RateLimitConfig{
		UserLimit:  5,
		UserWindow: time.Minute,
		IPLimit:    100,
		IPWindow:   time.Minute,
	})
	userID := uuid.New()
	token := app.token(t, userID)
	addr, _ := walletKeypair(t)

	// Attempts count whether or not they succeed. Use an unknown nonce so
	// each attempt fails fast after the gate.
	body, _ := json.Marshal(map[string]string{
		"address":   addr,
		"signature": "c2lnbmF0dXJl",
		"nonce":     "deadbeefdeadbeef",
	})

	for i := 0; i < 5; i++ {
		resp := app.do(t, http.MethodPost, "/api/v1/wallets/connect", token, string(body))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "attempt %d should pass the gate", i+1)
		resp.Body.Close()
	}

	resp := app.do(t, http.MethodPost, "/api/v1/wallets/connect", token, string(body))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("Retry-After"))
	assert.Equal(t, "WALLET_RATE_LIMITED", errorCode(t, resp))

	// Another user is unaffected.
	otherToken := app.token(t, uuid.New())
	resp = app.do(t, http.MethodPost, "/api/v1/wallets/connect", otherToken, string(body))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// The window eventually resets.
	app.redis.FastForward(61 * time.Second)
	resp = app.do(t, http.MethodPost, "/api/v1/wallets/connect", token, string(body))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
