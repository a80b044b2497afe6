package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/dto"
	"github.com/SscSPs/route_lending_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// creditHandler handles HTTP requests related to credits.
type creditHandler struct {
	creditService portssvc.CreditSvcFacade
	isProduction  bool
}

func newCreditHandler(cs portssvc.CreditSvcFacade, isProduction bool) *creditHandler {
	return &creditHandler{creditService: cs, isProduction: isProduction}
}

func registerCreditRoutes(rg *gin.RouterGroup, h *creditHandler) {
	rg.POST("/clients/:clientID/credits", h.issueCredit)
	rg.GET("/clients/:clientID/credits", h.listClientCredits)

	credits := rg.Group("/credits")
	{
		credits.GET("/:creditID", h.getCredit)
		credits.POST("/:creditID/lost", h.markLost)
	}
}

// issueCredit godoc
// @Summary Issue a credit to a client
// @Tags credits
// @Accept  json
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Param   credit body dto.IssueCreditRequest true "Credit terms"
// @Success 201 {object} dto.CreditResponse
// @Failure 400 {object} map[string]string "Invalid terms"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 422 {object} map[string]string "Client is inactive or already holds an active credit"
// @Failure 500 {object} map[string]string "Failed to issue credit"
// @Security BearerAuth
// @Router /clients/{clientID}/credits [post]
func (h *creditHandler) issueCredit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	var req dto.IssueCreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "IssueCredit", err)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("client_id", clientID))
	logger.Info("Received request to issue credit", slog.String("total_to_pay", req.TotalToPay.String()))

	credit, err := h.creditService.IssueCredit(c.Request.Context(), clientID, req, userID)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to issue credit")
		return
	}

	logger.Info("Credit issued", slog.String("credit_id", credit.CreditID))
	c.JSON(http.StatusCreated, dto.ToCreditResponse(credit))
}

// listClientCredits godoc
// @Summary List a client's credits
// @Tags credits
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Success 200 {array} dto.CreditResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to list credits"
// @Security BearerAuth
// @Router /clients/{clientID}/credits [get]
func (h *creditHandler) listClientCredits(c *gin.Context) {
	credits, err := h.creditService.ListClientCredits(c.Request.Context(), c.Param("clientID"))
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to list credits")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCreditResponse(credits))
}

// getCredit godoc
// @Summary Get a credit statement
// @Description The credit with its summary as of today and its installment schedule
// @Tags credits
// @Produce  json
// @Param   creditID path string true "Credit ID"
// @Success 200 {object} dto.CreditDetailResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Credit not found"
// @Failure 500 {object} map[string]string "Failed to retrieve credit"
// @Security BearerAuth
// @Router /credits/{creditID} [get]
func (h *creditHandler) getCredit(c *gin.Context) {
	st, err := h.creditService.GetCreditStatement(c.Request.Context(), c.Param("creditID"))
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to retrieve credit")
		return
	}
	c.JSON(http.StatusOK, dto.ToCreditDetailResponse(st))
}

// markLost godoc
// @Summary Write a credit off as lost
// @Tags credits
// @Produce  json
// @Param   creditID path string true "Credit ID"
// @Success 200 {object} dto.CreditResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Credit not found"
// @Failure 409 {object} map[string]string "Credit is already paid or lost"
// @Failure 500 {object} map[string]string "Failed to mark credit lost"
// @Security BearerAuth
// @Router /credits/{creditID}/lost [post]
func (h *creditHandler) markLost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	creditID := c.Param("creditID")

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	credit, err := h.creditService.MarkCreditLost(c.Request.Context(), creditID, userID)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to mark credit lost")
		return
	}

	logger.Info("Credit marked lost", slog.String("credit_id", creditID))
	c.JSON(http.StatusOK, dto.ToCreditResponse(credit))
}
