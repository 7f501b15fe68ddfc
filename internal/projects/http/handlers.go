package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/portfolio-backend/internal/auth"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.ListVisible(c.Request.Context())
	if err != nil {
		internalError(c, "list projects", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.svc.GetVisible(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		internalError(c, "get project", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) adminList(c *gin.Context) {
	items, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		internalError(c, "list admin projects", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingFields.Error()})
			return
		}
		internalError(c, "create project", err)
		return
	}
	log.Printf("[projects] created id=%d by=%s", p.ID, auth.Email(c))
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.svc.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		internalError(c, "update project", err)
		return
	}
	log.Printf("[projects] updated id=%d by=%s", id, auth.Email(c))
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		internalError(c, "delete project", err)
		return
	}
	log.Printf("[projects] deleted id=%d by=%s", id, auth.Email(c))
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// projectID parses the :id path parameter. A non-numeric id cannot name an
// accessible record, so it is reported as not found.
func projectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
		return 0, false
	}
	return id, true
}

// internalError logs the cause and answers with a detail-free 500.
func internalError(c *gin.Context, op string, err error) {
	log.Printf("[projects] %s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
