package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/dto"
	"github.com/SscSPs/route_lending_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
	isProduction  bool
}

func newClientHandler(cs portssvc.ClientSvcFacade, isProduction bool) *clientHandler {
	return &clientHandler{clientService: cs, isProduction: isProduction}
}

func registerClientRoutes(rg *gin.RouterGroup, h *clientHandler) {
	clients := rg.Group("/clients")
	{
		clients.POST("", h.enrollClient)
		clients.GET("/:clientID", h.getClient)
		clients.PUT("/:clientID", h.updateClient)
	}
}

// enrollClient godoc
// @Summary Enroll a client on a route
// @Description Creates a client at the end of the route's visiting order
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   client body dto.EnrollClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Route not found"
// @Failure 409 {object} map[string]string "Identification number already registered"
// @Failure 500 {object} map[string]string "Failed to enroll client"
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) enrollClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.EnrollClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "EnrollClient", err)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("route_id", req.RouteID))
	logger.Info("Received request to enroll client")

	client, err := h.clientService.EnrollClient(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to enroll client")
		return
	}

	logger.Info("Client enrolled", slog.String("client_id", client.ClientID), slog.Int("order", client.Order))
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// getClient godoc
// @Summary Get a client by ID
// @Tags clients
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 500 {object} map[string]string "Failed to retrieve client"
// @Security BearerAuth
// @Router /clients/{clientID} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	client, err := h.clientService.GetClientByID(c.Request.Context(), c.Param("clientID"))
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// updateClient godoc
// @Summary Edit a client
// @Description Applies a client edit: contact data, status, route and position. Every record rewritten to keep the affected routes ordered is returned.
// @Tags clients
// @Accept  json
// @Produce  json
// @Param   clientID path string true "Client ID"
// @Param   client body dto.UpdateClientRequest true "Fields to change"
// @Success 200 {object} dto.UpdateClientResponse
// @Failure 400 {object} map[string]string "Invalid input or position out of range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Client not found"
// @Failure 409 {object} map[string]string "Client changed concurrently"
// @Failure 422 {object} map[string]string "Client still owes a balance"
// @Failure 500 {object} map[string]string "Failed to update client"
// @Security BearerAuth
// @Router /clients/{clientID} [put]
func (h *clientHandler) updateClient(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID := c.Param("clientID")

	var req dto.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "UpdateClient", err)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	logger = logger.With(slog.String("client_id", clientID))
	logger.Info("Received request to update client")

	client, muts, err := h.clientService.UpdateClient(c.Request.Context(), clientID, req, userID)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to update client")
		return
	}

	logger.Info("Client updated", slog.Int("records_written", len(muts)))
	c.JSON(http.StatusOK, dto.UpdateClientResponse{
		Client:    dto.ToClientResponse(client),
		Mutations: dto.ToClientMutationResponses(muts),
	})
}
