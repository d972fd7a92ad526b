package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/resume-site/resume-backend/internal/requests/domain"
	"github.com/resume-site/resume-backend/internal/requests/repository"
)

// Store is what the handlers need from the repository.
type Store interface {
	Create(ctx context.Context, req repository.NewRequest) (*domain.ProjectRequest, error)
	List(ctx context.Context, skip, limit int) ([]domain.ProjectRequest, error)
	Get(ctx context.Context, id int64) (*domain.ProjectRequest, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.ProjectRequest, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	repo Store
}

func NewHandler(repo Store) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), repository.NewRequest{
		Name:               req.Name,
		Email:              req.Email,
		ProjectDescription: req.ProjectDescription,
		Budget:             req.Budget,
		Timeline:           req.Timeline,
		ProjectType:        req.ProjectType,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query"})
		return
	}

	items, err := h.repo.List(c.Request.Context(), q.Skip, q.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	p, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) updateStatus(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	p, err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := requestID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		respondRepoError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project request deleted successfully"})
}

func requestID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "project request not found"})
		return 0, false
	}
	return id, true
}

func respondRepoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "project request not found"})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
