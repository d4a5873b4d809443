package booking

import (
	"net/http"
	"strconv"

	"homeservices/internal/domain"
	"homeservices/internal/middleware"
	"homeservices/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the customer-facing booking endpoints. The
// provider-facing ones live under the provider group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/create", h.Create)
	rg.GET("/user-bookings", h.ListMine)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.POST("/:id/pay", h.Pay)
}

func (h *Handler) Create(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), identity, req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Service date must be in the future")
		case ErrSubcategoryNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Subcategory not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListMine(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	views, err := h.service.ListForCustomer(c.Request.Context(), identity)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": views})
}

func (h *Handler) Get(c *gin.Context) {
	identity, bookingID, ok := h.callerAndID(c)
	if !ok {
		return
	}

	view, err := h.service.GetForCustomer(c.Request.Context(), identity, bookingID)
	if err != nil {
		h.renderError(c, err, "Failed to load booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": view})
}

func (h *Handler) Update(c *gin.Context) {
	identity, bookingID, ok := h.callerAndID(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	view, err := h.service.CancelByCustomer(c.Request.Context(), identity, bookingID, req.Status)
	if err != nil {
		h.renderError(c, err, "Failed to update booking")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": view})
}

func (h *Handler) Pay(c *gin.Context) {
	identity, bookingID, ok := h.callerAndID(c)
	if !ok {
		return
	}

	view, err := h.service.Pay(c.Request.Context(), identity, bookingID)
	if err != nil {
		h.renderError(c, err, "Failed to record payment")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": view})
}

func (h *Handler) callerAndID(c *gin.Context) (domain.Identity, int64, bool) {
	identity, found := middleware.IdentityFrom(c)
	if !found {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return domain.Identity{}, 0, false
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return domain.Identity{}, 0, false
	}
	return identity, bookingID, true
}

func (h *Handler) renderError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid status update")
	case ErrNotFound, ErrSubcategoryNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not your booking")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Booking state conflicts with the requested change")
	case ErrInvalidStatusTransition:
		response.Error(c, http.StatusBadRequest, "INVALID_TRANSITION", "Status transition not permitted")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
