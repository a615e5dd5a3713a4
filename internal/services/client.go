package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"weddinginvite/internal/domain"
)

// maxCreateAttempts bounds how often Create re-allocates a slug after losing
// an insert race on the unique constraint.
const maxCreateAttempts = 3

type clientService struct {
	clientRepo     domain.ClientRepository
	slugs          domain.SlugAllocator
	contextTimeout time.Duration
}

func NewClientService(clientRepo domain.ClientRepository, slugs domain.SlugAllocator, timeout time.Duration) domain.ClientService {
	return &clientService{
		clientRepo:     clientRepo,
		slugs:          slugs,
		contextTimeout: timeout,
	}
}

func (s *clientService) List(ctx context.Context, p domain.PaginationParams) ([]*domain.Client, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	clients, total, err := s.clientRepo.List(ctx, p)
	if err != nil {
		return nil, 0, domain.Upstream("list clients", err)
	}
	if clients == nil {
		clients = []*domain.Client{}
	}
	return clients, total, nil
}

func (s *clientService) Get(ctx context.Context, id string) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return clientByID(ctx, s.clientRepo, id)
}

// Create stores c under a free slug. The base slug is c.Slug, or the couple
// name when c.Slug is empty, normalized with Slugify. On success c.ID, c.Slug
// and c.CreatedAt are set.
func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(c.CoupleName) == "" {
		return domain.Validation("couple_name is required")
	}
	if strings.TrimSpace(c.TemplateID) == "" {
		return domain.Validation("template_id is required")
	}
	source := c.Slug
	if strings.TrimSpace(source) == "" {
		source = c.CoupleName
	}
	base := Slugify(source)
	if base == "" {
		return domain.Validation("slug must contain at least one letter or digit")
	}

	c.CreatedAt = time.Now().UTC()
	for range maxCreateAttempts {
		slug, err := s.slugs.Allocate(ctx, base)
		if err != nil {
			return err
		}
		c.Slug = slug
		err = s.clientRepo.Create(ctx, c)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrSlugTaken) {
			return domain.Upstream("create client", err)
		}
	}
	return domain.Upstream("create client", fmt.Errorf("slug %q: %w", base, domain.ErrSlugTaken))
}

func (s *clientService) Update(ctx context.Context, id string, u domain.ClientUpdate) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if u.CoupleName != nil && strings.TrimSpace(*u.CoupleName) == "" {
		return nil, domain.Validation("couple_name must not be empty")
	}
	if u.TemplateID != nil && strings.TrimSpace(*u.TemplateID) == "" {
		return nil, domain.Validation("template_id must not be empty")
	}
	client, err := s.clientRepo.Update(ctx, id, u)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NotFound(msgClientNotFound)
		}
		return nil, domain.Upstream("update client", err)
	}
	return client, nil
}
