package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/route_lending_app/internal/apperrors"
	"github.com/SscSPs/route_lending_app/internal/core/domain"
	portssvc "github.com/SscSPs/route_lending_app/internal/core/ports/services"
	"github.com/SscSPs/route_lending_app/internal/dto"
	"github.com/SscSPs/route_lending_app/internal/middleware"
	"github.com/SscSPs/route_lending_app/internal/pdf"
	"github.com/gin-gonic/gin"
)

// routeHandler handles HTTP requests related to routes.
type routeHandler struct {
	routeService portssvc.RouteSvcFacade
	sheets       pdf.Generator
	clock        domain.Clock
	isProduction bool
}

func newRouteHandler(rs portssvc.RouteSvcFacade, sheets pdf.Generator, clock domain.Clock, isProduction bool) *routeHandler {
	return &routeHandler{
		routeService: rs,
		sheets:       sheets,
		clock:        clock,
		isProduction: isProduction,
	}
}

// registerRouteRoutes registers routes related to collection routes.
func registerRouteRoutes(rg *gin.RouterGroup, h *routeHandler) {
	routes := rg.Group("/routes")
	{
		routes.POST("", h.createRoute)
		routes.GET("", h.listRoutes)
		routes.GET("/:routeID", h.getRoute)
		routes.GET("/:routeID/clients", h.listRouteClients)
		routes.POST("/:routeID/normalize", h.normalizeRoute)
		routes.GET("/:routeID/verify", h.verifyRoute)
		routes.GET("/:routeID/overdue", h.overdueReport)
		routes.GET("/:routeID/sheet.pdf", h.routeSheet)
	}
}

// createRoute godoc
// @Summary Create a new route
// @Description Creates a new collection route
// @Tags routes
// @Accept  json
// @Produce  json
// @Param   route body dto.CreateRouteRequest true "Route details"
// @Success 201 {object} dto.RouteResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create route"
// @Security BearerAuth
// @Router /routes [post]
func (h *routeHandler) createRoute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, "CreateRoute", err)
		return
	}

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	logger.Info("Received request to create route", slog.String("route_name", req.Name))
	route, err := h.routeService.CreateRoute(c.Request.Context(), req, userID)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to create route")
		return
	}

	logger.Info("Route created successfully", slog.String("route_id", route.RouteID))
	c.JSON(http.StatusCreated, dto.ToRouteResponse(route))
}

// listRoutes godoc
// @Summary List routes
// @Tags routes
// @Produce  json
// @Success 200 {array} dto.RouteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list routes"
// @Security BearerAuth
// @Router /routes [get]
func (h *routeHandler) listRoutes(c *gin.Context) {
	routes, err := h.routeService.ListRoutes(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to list routes")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRouteResponse(routes))
}

// getRoute godoc
// @Summary Get a route by ID
// @Tags routes
// @Produce  json
// @Param   routeID path string true "Route ID"
// @Success 200 {object} dto.RouteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Route not found"
// @Failure 500 {object} map[string]string "Failed to retrieve route"
// @Security BearerAuth
// @Router /routes/{routeID} [get]
func (h *routeHandler) getRoute(c *gin.Context) {
	route, err := h.routeService.GetRouteByID(c.Request.Context(), c.Param("routeID"))
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to retrieve route")
		return
	}
	c.JSON(http.StatusOK, dto.ToRouteResponse(route))
}

// listRouteClients godoc
// @Summary List the clients of a route
// @Description Active clients in visiting order. Inactive clients follow when includeInactive is true.
// @Tags routes
// @Produce  json
// @Param   routeID path string true "Route ID"
// @Param   includeInactive query bool false "Include inactive clients"
// @Success 200 {array} dto.ClientResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Route not found"
// @Failure 500 {object} map[string]string "Failed to list clients"
// @Security BearerAuth
// @Router /routes/{routeID}/clients [get]
func (h *routeHandler) listRouteClients(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"
	clients, err := h.routeService.ListRouteClients(c.Request.Context(), c.Param("routeID"), includeInactive)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// normalizeRoute godoc
// @Summary Repair a route's ordering
// @Description Re-ranks the active clients of a route to 1..N, rewriting only the records whose order changes
// @Tags routes
// @Produce  json
// @Param   routeID path string true "Route ID"
// @Success 200 {object} dto.NormalizeRouteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Route not found"
// @Failure 409 {object} map[string]string "Route changed concurrently"
// @Failure 500 {object} map[string]string "Failed to normalize route"
// @Security BearerAuth
// @Router /routes/{routeID}/normalize [post]
func (h *routeHandler) normalizeRoute(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	routeID := c.Param("routeID")

	userID, ok := currentUser(c)
	if !ok {
		return
	}

	muts, err := h.routeService.NormalizeRoute(c.Request.Context(), routeID, userID)
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to normalize route")
		return
	}

	logger.Info("Route normalized", slog.String("route_id", routeID), slog.Int("changed", len(muts)))
	c.JSON(http.StatusOK, dto.NormalizeRouteResponse{
		RouteID: routeID,
		Changed: dto.ToClientMutationResponses(muts),
	})
}

// verifyRoute godoc
// @Summary Verify a route's ordering
// @Description Reports whether the active clients of a route are ordered exactly 1..N
// @Tags routes
// @Produce  json
// @Param   routeID path string true "Route ID"
// @Success 200 {object} dto.RouteVerificationResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Route not found"
// @Failure 500 {object} map[string]string "Failed to verify route"
// @Security BearerAuth
// @Router /routes/{routeID}/verify [get]
func (h *routeHandler) verifyRoute(c *gin.Context) {
	routeID := c.Param("routeID")
	res := dto.RouteVerificationResponse{RouteID: routeID, Consistent: true}

	err := h.routeService.VerifyRoute(c.Request.Context(), routeID)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrInvariantViolation):
		res.Consistent = false
		res.Problem = err.Error()
	default:
		respondServiceError(c, h.isProduction, err, "Failed to verify route")
		return
	}
	c.JSON(http.StatusOK, res)
}

// overdueReport godoc
// @Summary List overdue clients on a route
// @Description Active credits on the route whose collected amount is behind schedule, in visiting order
// @Tags routes
// @Produce  json
// @Param   routeID path string true "Route ID"
// @Success 200 {array} dto.StandingResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Route not found"
// @Failure 500 {object} map[string]string "Failed to build overdue report"
// @Security BearerAuth
// @Router /routes/{routeID}/overdue [get]
func (h *routeHandler) overdueReport(c *gin.Context) {
	standings, err := h.routeService.OverdueReport(c.Request.Context(), c.Param("routeID"))
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to build overdue report")
		return
	}
	c.JSON(http.StatusOK, dto.ToListStandingResponse(standings))
}

// routeSheet godoc
// @Summary Download a route sheet
// @Description PDF listing the route's active clients in visiting order with balance, installment and overdue flag
// @Tags routes
// @Produce  application/pdf
// @Param   routeID path string true "Route ID"
// @Success 200 {file} file
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Route not found"
// @Failure 500 {object} map[string]string "Failed to render route sheet"
// @Security BearerAuth
// @Router /routes/{routeID}/sheet.pdf [get]
func (h *routeHandler) routeSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	route, standings, err := h.routeService.RouteSheet(c.Request.Context(), c.Param("routeID"))
	if err != nil {
		respondServiceError(c, h.isProduction, err, "Failed to render route sheet")
		return
	}

	day := h.clock.Today()
	var buf bytes.Buffer
	if err := h.sheets.RouteSheet(&buf, pdf.RouteSheetData{Route: *route, Day: day, Standings: standings}); err != nil {
		logger.Error("Failed to render route sheet", slog.String("route_id", route.RouteID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render route sheet"})
		return
	}

	filename := fmt.Sprintf("route_%s_%s.pdf", route.RouteID, day.String())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
