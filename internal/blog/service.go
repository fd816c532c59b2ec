package blog

import (
	"context"
	"errors"

	"github.com/gatekit/gatekit/internal/validate"
	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add assigns a fresh id, validates, and commits. Caller-supplied ids are
// discarded.
func (s *Service) Add(ctx context.Context, a Article) (Article, validate.Result, error) {
	a.ID = uuid.New()
	if res := validateArticle(a); !res.OK {
		return Article{}, res, nil
	}
	if err := s.repo.Add(ctx, a); err != nil {
		return Article{}, validate.Result{}, err
	}
	return a, validate.Valid(), nil
}

func (s *Service) Update(ctx context.Context, a Article) (validate.Result, error) {
	if _, err := s.repo.GetByID(ctx, a.ID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return validate.NotFound("article not found"), nil
		}
		return validate.Result{}, err
	}
	if res := validateArticle(a); !res.OK {
		return res, nil
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return validate.Result{}, err
	}
	return validate.Valid(), nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (validate.Result, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return validate.NotFound("article not found"), nil
		}
		return validate.Result{}, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return validate.Result{}, err
	}
	return validate.Valid(), nil
}

func validateArticle(a Article) validate.Result {
	if a.Title == "" {
		return validate.Invalid("article title cannot be empty")
	}
	if a.Content == "" {
		return validate.Invalid("article content cannot be empty")
	}
	return validate.Valid()
}
