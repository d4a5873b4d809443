package provider

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"homeservices/internal/domain"
	"homeservices/internal/middleware"
	"homeservices/internal/modules/booking"
	"homeservices/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// Handler exposes the provider dashboard. Request-feed and booking
// mutations delegate to the booking engine; service registration,
// earnings, and stats come from the provider service.
type Handler struct {
	service  *Service
	bookings *booking.Service
}

func NewHandler(service *Service, bookings *booking.Service) *Handler {
	return &Handler{service: service, bookings: bookings}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/requests", h.OpenRequests)
	rg.POST("/requests/:id/accept", h.Accept)
	rg.POST("/requests/:id/decline", h.Decline)
	rg.GET("/bookings", h.ActiveBookings)
	rg.PUT("/bookings/:id/status", h.UpdateStatus)
	rg.POST("/bookings/:id/complete", h.Complete)
	rg.GET("/services", h.ListServices)
	rg.POST("/services", h.RegisterService)
	rg.DELETE("/services/:id", h.UnregisterService)
	rg.GET("/earnings", h.Earnings)
	rg.GET("/stats", h.Stats)
}

func (h *Handler) OpenRequests(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	items, err := h.bookings.OpenRequests(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": items})
}

func (h *Handler) Accept(c *gin.Context) {
	identity, bookingID, ok := callerAndID(c)
	if !ok {
		return
	}

	view, err := h.bookings.Accept(c.Request.Context(), identity, bookingID)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": view})
}

func (h *Handler) Decline(c *gin.Context) {
	identity, bookingID, ok := callerAndID(c)
	if !ok {
		return
	}

	view, err := h.bookings.Decline(c.Request.Context(), identity, bookingID)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": view})
}

func (h *Handler) ActiveBookings(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	views, err := h.bookings.ActiveForProvider(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": views})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	identity, bookingID, ok := callerAndID(c)
	if !ok {
		return
	}

	var req booking.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.bookings.AdvanceStatus(c.Request.Context(), identity, bookingID, req)
	if err != nil {
		h.renderBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": view})
}

// Complete is the completion shorthand; only the payment method is read
// from the body.
func (h *Handler) Complete(c *gin.Context) {
	identity, bookingID, ok := callerAndID(c)
	if !ok {
		return
	}

	var req struct {
		PaymentMethod string `json:"payment_method"`
	}
	// the body is optional here; absent means online payment
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.bookings.AdvanceStatus(c.Request.Context(), identity, bookingID, booking.AdvanceStatusRequest{
		Status:        string(domain.BookingCompleted),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.renderBookingError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": view})
}

func (h *Handler) ListServices(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	services, err := h.service.ListServices(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}

func (h *Handler) RegisterService(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	var req RegisterServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.RegisterService(c.Request.Context(), identity, req.SubcategoryID)
	if err != nil {
		switch err {
		case ErrSubcategoryNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Subcategory not found")
		case ErrAlreadyRegistered:
			response.Error(c, http.StatusConflict, "CONFLICT", "Service already registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register service")
		}
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"service": svc})
}

func (h *Handler) UnregisterService(c *gin.Context) {
	identity, subcategoryID, ok := callerAndID(c)
	if !ok {
		return
	}

	if err := h.service.UnregisterService(c.Request.Context(), identity, subcategoryID); err != nil {
		switch err {
		case ErrNotRegistered:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Service not registered")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to unregister service")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"msg": "Service unregistered"})
}

func (h *Handler) Earnings(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	earnings, err := h.service.Earnings(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load earnings")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"earnings": earnings})
}

func (h *Handler) Stats(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}

func (h *Handler) renderBookingError(c *gin.Context, err error) {
	switch err {
	case booking.ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request")
	case booking.ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found or already accepted")
	case booking.ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
	case booking.ErrInvalidStatusTransition:
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Status transition not permitted")
	case booking.ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Booking state conflicts with the requested change")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Booking operation failed")
	}
}

func caller(c *gin.Context) (domain.Identity, bool) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return domain.Identity{}, false
	}
	return identity, true
}

func callerAndID(c *gin.Context) (domain.Identity, int64, bool) {
	identity, ok := caller(c)
	if !ok {
		return domain.Identity{}, 0, false
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid ID")
		return domain.Identity{}, 0, false
	}
	return identity, id, true
}
