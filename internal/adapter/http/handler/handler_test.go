package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticket-wallet-service/internal/adapter/http/dto"
	"ticket-wallet-service/internal/adapter/http/middleware"
	"ticket-wallet-service/internal/core/domain"
	"ticket-wallet-service/internal/core/ports"
	"ticket-wallet-service/internal/core/ports/mocks"
	"ticket-wallet-service/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testAddr = "4Nd1mYvM6nWqtqjQszt7qDbzXQgznGqfMos4fuyVBsNU"

func authedContext(t *testing.T, userID uuid.UUID, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	c.Request = httptest.NewRequest(method, path, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(middleware.CtxUserID, userID)
	return c, w
}

// --- Nonce ---

func TestIssueNonce_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()
	expires := time.Now().Add(5 * time.Minute).Truncate(time.Second)

	mockSvc.EXPECT().IssueNonce(gomock.Any(), userID).Return(&ports.NonceChallenge{
		Nonce:     "deadbeef",
		Message:   "sign me",
		ExpiresAt: expires,
	}, nil)

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/wallets/nonce", nil)
	h.IssueNonce(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "deadbeef", data["nonce"])
	assert.Equal(t, "sign me", data["message"])
	assert.Equal(t, float64(expires.Unix()), data["expires_at"])
}

func TestIssueNonce_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/wallets/nonce", nil)

	h.IssueNonce(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Connect ---

func TestConnect_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()
	now := time.Now().UTC()

	mockSvc.EXPECT().Connect(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, req ports.ConnectRequest) (*ports.ConnectResult, error) {
			assert.Equal(t, userID, req.UserID)
			assert.Equal(t, testAddr, req.Address)
			assert.Equal(t, "c2lnbmF0dXJl", req.Signature)
			assert.Equal(t, "deadbeef", req.Nonce)
			assert.NotEmpty(t, req.ClientIP)
			return &ports.ConnectResult{
				Wallet: &domain.WalletAddress{
					ID:             uuid.New(),
					UserID:         userID,
					Address:        testAddr,
					BlockchainType: domain.BlockchainTypeSolana,
					IsPrimary:      true,
					VerifiedAt:     &now,
					CreatedAt:      now,
				},
				Status: ports.ConnectStatusConnected,
			}, nil
		})

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/wallets/connect", dto.ConnectWalletRequest{
		Address:   testAddr,
		Signature: "c2lnbmF0dXJl",
		Nonce:     "deadbeef",
	})
	h.Connect(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "connected", data["status"])
	wallet := data["wallet"].(map[string]interface{})
	assert.Equal(t, testAddr, wallet["address"])
	assert.Equal(t, true, wallet["is_primary"])
}

func TestConnect_MalformedAddressRejectedAtBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewWalletHandler(mocks.NewMockWalletService(ctrl))

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/wallets/connect", dto.ConnectWalletRequest{
		Address:   "0xdeadbeef",
		Signature: "c2ln",
		Nonce:     "deadbeef",
	})
	h.Connect(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WALLET_VALIDATION_ERROR", resp["error_code"])
}

func TestConnect_RateLimitedSetsRetryAfter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)

	mockSvc.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrRateLimited(42*time.Second))

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/wallets/connect", dto.ConnectWalletRequest{
		Address:   testAddr,
		Signature: "c2ln",
		Nonce:     "deadbeef",
	})
	h.Connect(c)

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "42", w.Header().Get("Retry-After"))
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "WALLET_RATE_LIMITED", resp["error_code"])
	assert.Equal(t, float64(42), resp["retry_after"])
}

func TestConnect_AuthFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)

	mockSvc.EXPECT().Connect(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrSignatureInvalid())

	c, w := authedContext(t, uuid.New(), http.MethodPost, "/api/v1/wallets/connect", dto.ConnectWalletRequest{
		Address:   testAddr,
		Signature: "c2ln",
		Nonce:     "deadbeef",
	})
	h.Connect(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Disconnect ---

func TestDisconnect_Found(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().Disconnect(gomock.Any(), ports.DisconnectRequest{
		UserID:  userID,
		Address: testAddr,
		Reason:  "rotating keys",
	}).Return(true, nil)

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/wallets/disconnect", dto.DisconnectWalletRequest{
		Address: testAddr,
		Reason:  "rotating keys",
	})
	h.Disconnect(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["disconnected"])
}

func TestDisconnect_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().Disconnect(gomock.Any(), gomock.Any()).Return(false, nil)

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/wallets/disconnect", dto.DisconnectWalletRequest{
		Address: testAddr,
	})
	h.Disconnect(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["disconnected"])
}

// --- Restore ---

func TestRestore_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().Restore(gomock.Any(), userID, testAddr, "").Return(&domain.WalletAddress{
		ID:        uuid.New(),
		UserID:    userID,
		Address:   testAddr,
		IsPrimary: true,
	}, true, nil)

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/wallets/restore", dto.RestoreWalletRequest{
		Address: testAddr,
	})
	h.Restore(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["restored"])
	assert.NotNil(t, data["wallet"])
}

func TestRestore_NotRestorable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().Restore(gomock.Any(), userID, testAddr, "").Return(nil, false, nil)

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/wallets/restore", dto.RestoreWalletRequest{
		Address: testAddr,
	})
	h.Restore(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, false, data["restored"])
	assert.Nil(t, data["wallet"])
}

// --- Reads ---

func TestList_Active(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().GetUserWallets(gomock.Any(), userID).Return([]domain.WalletAddress{
		{ID: uuid.New(), UserID: userID, Address: testAddr, IsPrimary: true},
	}, nil)

	c, w := authedContext(t, userID, http.MethodGet, "/api/v1/wallets", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 1)
}

func TestList_IncludeDeleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()
	deletedAt := time.Now()

	mockSvc.EXPECT().GetUserWalletsIncludingDeleted(gomock.Any(), userID).Return([]domain.WalletAddress{
		{ID: uuid.New(), UserID: userID, Address: testAddr},
		{ID: uuid.New(), UserID: userID, Address: testAddr, DeletedAt: &deletedAt},
	}, nil)

	c, w := authedContext(t, userID, http.MethodGet, "/api/v1/wallets?include_deleted=true", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 2)
}

func TestList_EmptyIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().GetUserWallets(gomock.Any(), userID).Return(nil, nil)

	c, w := authedContext(t, userID, http.MethodGet, "/api/v1/wallets", nil)
	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetPrimary_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().GetPrimaryWallet(gomock.Any(), userID).Return(nil, nil)

	c, w := authedContext(t, userID, http.MethodGet, "/api/v1/wallets/primary", nil)
	h.GetPrimary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Nil(t, resp["data"])
}

func TestVerifyOwnership(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().VerifyOwnership(gomock.Any(), userID, testAddr).Return(true, nil)

	c, w := authedContext(t, userID, http.MethodPost, "/api/v1/wallets/verify", dto.VerifyOwnershipRequest{
		Address: testAddr,
	})
	h.VerifyOwnership(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, true, data["owned"])
}

func TestHistory_WithAddressFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockSvc)
	userID := uuid.New()

	mockSvc.EXPECT().GetWalletHistory(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ interface{}, _ uuid.UUID, addr *string) ([]domain.WalletConnectionAudit, error) {
			require.NotNil(t, addr)
			assert.Equal(t, testAddr, *addr)
			return []domain.WalletConnectionAudit{
				{ID: uuid.New(), UserID: userID, Address: testAddr, ConnectionType: domain.ConnectionTypeConnect, SignatureProof: "secret"},
			}, nil
		})

	c, w := authedContext(t, userID, http.MethodGet, "/api/v1/wallets/history?address="+testAddr, nil)
	h.History(c)

	assert.Equal(t, http.StatusOK, w.Code)
	// Proof material never leaves the server.
	assert.NotContains(t, w.Body.String(), "secret")
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].([]interface{})
	assert.Len(t, data, 1)
}

// --- Health ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(_ context.Context) error { return s.err }
func (s stubChecker) Name() string                 { return s.name }

func TestHealthCheck(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(stubChecker{name: "postgres"}, stubChecker{name: "redis"}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	r := gin.New()
	r.GET("/health", HealthCheck(stubChecker{name: "postgres", err: errors.New("dial refused")}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"degraded"`)
}
