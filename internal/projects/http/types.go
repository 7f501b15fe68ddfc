package http

import (
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/projects/service"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
}

func New(svc *service.ProjectService) *Handler {
	return &Handler{svc: svc}
}

type createReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Images      []string `json:"images"`
	Link        *string  `json:"link"`
	IsVisible   *bool    `json:"isVisible"`
	IsFeatured  *bool    `json:"isFeatured"`
}

func (r createReq) toDomain() domain.CreateProject {
	return domain.CreateProject{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		Image:       r.Image,
		Images:      r.Images,
		Link:        r.Link,
		IsVisible:   r.IsVisible,
		IsFeatured:  r.IsFeatured,
	}
}

type updateReq struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Tags        *[]string `json:"tags"`
	Image       string    `json:"image"`
	Images      *[]string `json:"images"`
	Link        *string   `json:"link"`
	IsVisible   *bool     `json:"isVisible"`
	IsFeatured  *bool     `json:"isFeatured"`
}

func (r updateReq) toDomain() domain.UpdateProject {
	return domain.UpdateProject{
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		Image:       r.Image,
		Images:      r.Images,
		Link:        r.Link,
		IsVisible:   r.IsVisible,
		IsFeatured:  r.IsFeatured,
	}
}
