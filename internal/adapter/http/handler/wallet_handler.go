package handler

import (
	"ticket-wallet-service/internal/adapter/http/dto"
	"ticket-wallet-service/internal/adapter/http/middleware"
	"ticket-wallet-service/internal/core/ports"
	"ticket-wallet-service/pkg/apperror"
	"ticket-wallet-service/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet lifecycle endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// IssueNonce handles POST /api/v1/wallets/nonce.
func (h *WalletHandler) IssueNonce(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	ch, err := h.walletSvc.IssueNonce(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NonceResponse{
		Nonce:     ch.Nonce,
		Message:   ch.Message,
		ExpiresAt: ch.ExpiresAt.Unix(),
	})
}

// Connect handles POST /api/v1/wallets/connect.
func (h *WalletHandler) Connect(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.ConnectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrValidation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.walletSvc.Connect(c.Request.Context(), ports.ConnectRequest{
		UserID:    userID,
		Address:   req.Address,
		Signature: req.Signature,
		Nonce:     req.Nonce,
		ClientIP:  c.ClientIP(),
		TenantID:  c.GetString(middleware.CtxTenantID),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ConnectWalletResponse{
		Wallet: dto.ToWalletResponse(result.Wallet),
		Status: string(result.Status),
	})
}

// Disconnect handles POST /api/v1/wallets/disconnect.
func (h *WalletHandler) Disconnect(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.DisconnectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrValidation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	found, err := h.walletSvc.Disconnect(c.Request.Context(), ports.DisconnectRequest{
		UserID:  userID,
		Address: req.Address,
		Reason:  req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.DisconnectWalletResponse{Disconnected: found})
}

// Restore handles POST /api/v1/wallets/restore.
func (h *WalletHandler) Restore(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.RestoreWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrValidation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, found, err := h.walletSvc.Restore(
		c.Request.Context(), userID, req.Address, c.GetString(middleware.CtxTenantID))
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.RestoreWalletResponse{Restored: found}
	if found {
		w := dto.ToWalletResponse(wallet)
		resp.Wallet = &w
	}
	response.OK(c, resp)
}

// List handles GET /api/v1/wallets. Active wallets only; pass
// include_deleted=true for the administrative view.
func (h *WalletHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var err error
	var rows []dto.WalletResponse
	if c.Query("include_deleted") == "true" {
		all, e := h.walletSvc.GetUserWalletsIncludingDeleted(c.Request.Context(), userID)
		err = e
		for i := range all {
			rows = append(rows, dto.ToWalletResponse(&all[i]))
		}
	} else {
		active, e := h.walletSvc.GetUserWallets(c.Request.Context(), userID)
		err = e
		for i := range active {
			rows = append(rows, dto.ToWalletResponse(&active[i]))
		}
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	if rows == nil {
		rows = []dto.WalletResponse{}
	}

	response.OK(c, rows)
}

// GetPrimary handles GET /api/v1/wallets/primary.
func (h *WalletHandler) GetPrimary(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	wallet, err := h.walletSvc.GetPrimaryWallet(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if wallet == nil {
		response.OK(c, nil)
		return
	}

	response.OK(c, dto.ToWalletResponse(wallet))
}

// VerifyOwnership handles POST /api/v1/wallets/verify.
func (h *WalletHandler) VerifyOwnership(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var req dto.VerifyOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrValidation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	owned, err := h.walletSvc.VerifyOwnership(c.Request.Context(), userID, req.Address)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.VerifyOwnershipResponse{Owned: owned})
}

// History handles GET /api/v1/wallets/history.
func (h *WalletHandler) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	var addressFilter *string
	if addr := c.Query("address"); addr != "" {
		addressFilter = &addr
	}

	records, err := h.walletSvc.GetWalletHistory(c.Request.Context(), userID, addressFilter)
	if err != nil {
		response.Error(c, err)
		return
	}

	rows := make([]dto.AuditResponse, 0, len(records))
	for i := range records {
		rows = append(rows, dto.ToAuditResponse(&records[i]))
	}

	response.OK(c, rows)
}
