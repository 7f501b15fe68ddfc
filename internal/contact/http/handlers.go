package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/contact/domain"
	"github.com/devfolio/portfolio-backend/internal/contact/service"
)

// Handler bundles the dependencies for contact HTTP endpoints.
type Handler struct {
	svc *service.ContactService
}

func New(svc *service.ContactService) *Handler {
	return &Handler{svc: svc}
}

// Register attaches contact routes. limit throttles the public form; guard
// protects the admin listing.
func (h *Handler) Register(rg *gin.RouterGroup, limit, guard gin.HandlerFunc) {
	rg.POST("", limit, h.submit)
	rg.GET("", guard, h.list)
}

type submitReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	id, err := h.svc.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) || errors.Is(err, domain.ErrInvalidEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("[contact] submit: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact form submitted successfully",
		"id":      id,
	})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Printf("[contact] list: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, items)
}
