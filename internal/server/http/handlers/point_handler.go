package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/finbase/pointledger/internal/domain/errors"
	"github.com/finbase/pointledger/internal/domain/model"
	"github.com/finbase/pointledger/internal/server/http/dto"
)

// PointHandler manages point balance endpoints.
type PointHandler struct {
	facade LedgerFacade
}

// NewPointHandler constructs PointHandler.
func NewPointHandler(facade LedgerFacade) *PointHandler {
	return &PointHandler{facade: facade}
}

// Balance handles GET /api/points/:userID.
func (h *PointHandler) Balance(c *gin.Context) {
	userID, ok := UserIDParam(c)
	if !ok {
		return
	}

	balance, err := h.facade.Balance(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, balanceResponse(balance))
}

// History handles GET /api/points/:userID/history.
func (h *PointHandler) History(c *gin.Context) {
	userID, ok := UserIDParam(c)
	if !ok {
		return
	}

	entries, err := h.facade.History(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	resp := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.HistoryEntryResponse{
			ID:         e.ID,
			UserID:     e.UserID,
			Amount:     e.Amount,
			Type:       string(e.Type),
			RecordedAt: e.RecordedAt,
		})
	}
	c.JSON(http.StatusOK, resp)
}

// Charge handles POST /api/points/:userID/charge.
func (h *PointHandler) Charge(c *gin.Context) {
	h.mutate(c, h.facade.Charge)
}

// Use handles POST /api/points/:userID/use.
func (h *PointHandler) Use(c *gin.Context) {
	h.mutate(c, h.facade.Use)
}

func (h *PointHandler) mutate(c *gin.Context, op func(ctx context.Context, userID, amount int64) (*model.LedgerResult, error)) {
	userID, ok := UserIDParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := op(c.Request.Context(), userID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrInvalidAmount), errors.Is(err, domainErrors.ErrAmountOverflow):
			c.Status(http.StatusUnprocessableEntity)
		case errors.Is(err, domainErrors.ErrInsufficientPoints):
			c.Status(http.StatusPaymentRequired)
		case errors.Is(err, domainErrors.ErrNotFound):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrLockTimeout):
			c.Status(http.StatusServiceUnavailable)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, balanceResponse(&result.Balance))
}

func balanceResponse(b *model.Balance) dto.BalanceResponse {
	return dto.BalanceResponse{UserID: b.UserID, Amount: b.Amount, UpdatedAt: b.UpdatedAt}
}
