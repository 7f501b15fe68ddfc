package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/uploader"
)

// Repository is the persistence surface the project service needs.
type Repository interface {
	ListVisible(ctx context.Context) ([]domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
	GetVisible(ctx context.Context, id int64) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Uploader resolves an image source to a durable URL.
type Uploader interface {
	Upload(ctx context.Context, src uploader.Source) (string, error)
}

// ListingCache caches the public listing between writes.
type ListingCache interface {
	Get(ctx context.Context) ([]domain.Project, bool)
	Set(ctx context.Context, items []domain.Project)
	Invalidate(ctx context.Context)
}

// ProjectService owns the project lifecycle rules: visibility filtering,
// featured ordering and image-list reconciliation.
type ProjectService struct {
	repo     Repository
	uploader Uploader
	cache    ListingCache
}

// NewProjectService creates a new project service. cache may be nil, in
// which case every public listing hits the store.
func NewProjectService(repo Repository, up Uploader, cache ListingCache) *ProjectService {
	return &ProjectService{
		repo:     repo,
		uploader: up,
		cache:    cache,
	}
}

// ListVisible returns the public listing.
func (s *ProjectService) ListVisible(ctx context.Context) ([]domain.Project, error) {
	if s.cache != nil {
		if items, ok := s.cache.Get(ctx); ok {
			return items, nil
		}
	}

	items, err := s.repo.ListVisible(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, items)
	}
	return items, nil
}

// GetVisible returns a single visible project. Hidden projects are
// indistinguishable from absent ones.
func (s *ProjectService) GetVisible(ctx context.Context, id int64) (*domain.Project, error) {
	return s.repo.GetVisible(ctx, id)
}

// ListAll returns every project for the admin dashboard.
func (s *ProjectService) ListAll(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListAll(ctx)
}

// Create validates, resolves images through the gateway and persists a new
// project. A gateway failure aborts the whole operation; no partial record
// is written.
func (s *ProjectService) Create(ctx context.Context, in domain.CreateProject) (*domain.Project, error) {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrMissingFields
	}

	var image *string
	if in.Image != "" {
		url, err := s.uploader.Upload(ctx, uploader.Parse(in.Image))
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		image = &url
	}

	images := make([]string, 0, len(in.Images))
	for _, entry := range in.Images {
		url, err := s.uploader.Upload(ctx, uploader.Parse(entry))
		if err != nil {
			return nil, fmt.Errorf("upload images: %w", err)
		}
		images = append(images, url)
	}

	p := &domain.Project{
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		Image:       image,
		Images:      images,
		Link:        in.Link,
		IsVisible:   true,
		IsFeatured:  false,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if in.IsVisible != nil {
		p.IsVisible = *in.IsVisible
	}
	if in.IsFeatured != nil {
		p.IsFeatured = *in.IsFeatured
	}

	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return created, nil
}

// Update merges a partial update onto the stored record. The merged record
// is written only after every image resolution succeeded.
func (s *ProjectService) Update(ctx context.Context, id int64, in domain.UpdateProject) (*domain.Project, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A re-sent unchanged image must not trigger a redundant upload.
	if in.Image != "" && (existing.Image == nil || in.Image != *existing.Image) {
		url, err := s.uploader.Upload(ctx, uploader.Parse(in.Image))
		if err != nil {
			return nil, fmt.Errorf("upload image: %w", err)
		}
		existing.Image = &url
	}

	// When the field is present the list is rebuilt entirely: durable URLs
	// pass through, raw payloads are resolved, order is preserved. Entries
	// the client left out are dropped from the record.
	if in.Images != nil {
		resolved := make([]string, 0, len(*in.Images))
		for _, entry := range *in.Images {
			src := uploader.Parse(entry)
			if src.Kind == uploader.KindReference {
				resolved = append(resolved, src.Value)
				continue
			}
			url, err := s.uploader.Upload(ctx, src)
			if err != nil {
				return nil, fmt.Errorf("upload images: %w", err)
			}
			resolved = append(resolved, url)
		}
		existing.Images = resolved
	}

	// Title/description keep the stored value when the request sends an
	// empty string; the remaining fields honor any present value, so
	// isVisible=false and tags=[] are applied.
	if in.Title != "" {
		existing.Title = in.Title
	}
	if in.Description != "" {
		existing.Description = in.Description
	}
	if in.Tags != nil {
		existing.Tags = *in.Tags
	}
	if in.Link != nil {
		existing.Link = in.Link
	}
	if in.IsVisible != nil {
		existing.IsVisible = *in.IsVisible
	}
	if in.IsFeatured != nil {
		existing.IsFeatured = *in.IsFeatured
	}

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

// Delete removes a project. Uploaded images are not cleaned up; orphaned
// URLs may remain at the gateway.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}

	s.invalidate(ctx)
	return nil
}

func (s *ProjectService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
