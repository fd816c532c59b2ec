// Package users owns mutations on the permission directory: identity
// records are created, updated, and deleted only through the validation
// engine here.
package users

import (
	"context"
	"errors"

	"github.com/gatekit/gatekit/internal/directory"
	"github.com/gatekit/gatekit/internal/validate"
	"github.com/google/uuid"
)

type Service struct {
	store directory.Store
}

func NewService(store directory.Store) *Service {
	return &Service{store: store}
}

// Add assigns a fresh id, validates, and commits. The returned identity
// carries the server-assigned id; any id supplied by the caller is
// discarded.
func (s *Service) Add(ctx context.Context, ident directory.Identity) (directory.Identity, validate.Result, error) {
	ident.ID = uuid.New()
	res, err := s.validateAdd(ctx, ident)
	if err != nil || !res.OK {
		return directory.Identity{}, res, err
	}
	if err := s.store.Add(ctx, ident); err != nil {
		return directory.Identity{}, validate.Result{}, err
	}
	return ident, res, nil
}

func (s *Service) Update(ctx context.Context, ident directory.Identity) (validate.Result, error) {
	res, err := s.validateUpdate(ctx, ident)
	if err != nil || !res.OK {
		return res, err
	}
	if err := s.store.Update(ctx, ident); err != nil {
		return validate.Result{}, err
	}
	return res, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) (validate.Result, error) {
	if _, err := s.store.GetByID(ctx, id); err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return validate.NotFound("user not found"), nil
		}
		return validate.Result{}, err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return validate.Result{}, err
	}
	return validate.Valid(), nil
}

func (s *Service) validateAdd(ctx context.Context, ident directory.Identity) (validate.Result, error) {
	if ident.Name == "" {
		return validate.Invalid("user name cannot be empty"), nil
	}
	if ident.Email == "" {
		return validate.Invalid("user email cannot be empty"), nil
	}
	// Name is the lookup key for authorization, so it must be unique.
	// The store matches case-insensitively, which makes this check
	// case-insensitive too.
	matches, err := s.store.List(ctx, ident.Name)
	if err != nil {
		return validate.Result{}, err
	}
	if len(matches) > 0 {
		return validate.Invalid("a user with the same name already exists"), nil
	}
	return validate.Valid(), nil
}

func (s *Service) validateUpdate(ctx context.Context, ident directory.Identity) (validate.Result, error) {
	existing, err := s.store.GetByID(ctx, ident.ID)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return validate.NotFound("user not found"), nil
		}
		return validate.Result{}, err
	}
	if existing.Name != ident.Name {
		return validate.Invalid("cannot change user name"), nil
	}
	if ident.Email == "" {
		return validate.Invalid("user email cannot be empty"), nil
	}
	return validate.Valid(), nil
}
