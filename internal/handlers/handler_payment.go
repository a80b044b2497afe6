package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/dto"
	"github.com/SscSPs/route_lending_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
	isProduction   bool
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade, isProduction bool) *paymentHandler {
	return &paymentHandler{paymentService: ps, isProduction: isProduction}
}

func registerPaymentRoutes(rg *gin.RouterGroup, h *paymentHandler) {
	rg.POST("/credits/:creditID/payments", h.recordPayment)
	rg.GET("/credits/:creditID/payments", h.listPayments)

	payments := rg.Group("/payments")
	{
		payments.PUT("/:paymentID", h.correctPayment)
		payments.POST("/:paymentID/void", h.voidPayment)
	}
}

// recordPayment godoc
// @Summary Record a payment
// @Description Applies a collection to a credit. The credit is recomputed from its full payment history and becomes PAID once fully covered.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   creditID path string true "Credit ID"
// @Param   payment body dto.RecordPaymentRequest true "Payment details"
// @Success 201 {object} dto.PaymentResultResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Credit not found"
// @Failure 409 {object} map[string]string "Credit is paid or lost"
// @Failure 500 {object} map[string]string "Failed to record payment"
// @Security BearerAuth
// @Router /credits/{creditID}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creditID := c.Param("creditID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "RecordPayment", err)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("credit_id", creditID))
	logger.Info("Received request to record payment", slog.String("amount", req.Amount.String()))

	payment, credit, err := h.paymentService.RecordPayment(c.Request.Context(), creditID, req, userID)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to record payment")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResultResponse(payment, credit))
}

// listPayments godoc
// @Summary List a credit's payments
// @Description Newest first, paginated with an opaque token
// @Tags payments
// @Produce  json
// @Param   creditID path string true "Credit ID"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Credit not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /credits/{creditID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, "ListPayments", err)
		return
	}

	res, err := h.paymentService.ListPayments(c.Request.Context(), c.Param("creditID"), params)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to list payments")
		return
	}
	c.JSON(http.StatusOK, res)
}

// correctPayment godoc
// @Summary Correct a payment amount
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Param   payment body dto.CorrectPaymentRequest true "New amount"
// @Success 200 {object} dto.PaymentResultResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Correction would reopen a paid credit, or the credit is lost"
// @Failure 500 {object} map[string]string "Failed to correct payment"
// @Security BearerAuth
// @Router /payments/{paymentID} [put]
func (h *paymentHandler) correctPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	var req dto.CorrectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CorrectPayment", err)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	payment, credit, err := h.paymentService.CorrectPayment(c.Request.Context(), paymentID, req, userID)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to correct payment")
		return
	}

	logger.Info("Payment corrected", slog.String("payment_id", paymentID), slog.String("amount", req.Amount.String()))
	c.JSON(http.StatusOK, dto.ToPaymentResultResponse(payment, credit))
}

// voidPayment godoc
// @Summary Void a payment
// @Tags payments
// @Produce  json
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResultResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Void would reopen a paid credit, or the credit is lost"
// @Failure 500 {object} map[string]string "Failed to void payment"
// @Security BearerAuth
// @Router /payments/{paymentID}/void [post]
func (h *paymentHandler) voidPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	paymentID := c.Param("paymentID")

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	payment, credit, err := h.paymentService.VoidPayment(c.Request.Context(), paymentID, userID)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to void payment")
		return
	}

	logger.Info("Payment voided", slog.String("payment_id", paymentID))
	c.JSON(http.StatusOK, dto.ToPaymentResultResponse(payment, credit))
}
