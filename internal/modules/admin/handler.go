package admin

import (
	"net/http"

	"homeservices/internal/modules/catalog"
	"homeservices/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
	catalog *catalog.Service
}

func NewHandler(service *Service, catalogService *catalog.Service) *Handler {
	return &Handler{service: service, catalog: catalogService}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics", h.Analytics)
	rg.GET("/users", h.ListUsers)
	rg.GET("/services", h.ListServices)
}

func (h *Handler) Analytics(c *gin.Context) {
	analytics, err := h.service.Analytics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load analytics")
		return
	}
	response.Success(c, http.StatusOK, analytics)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ListServices is the management view: categories with their
// subcategories nested.
func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.catalog.ListCatalog(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load services")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"services": services})
}
