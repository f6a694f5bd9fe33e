package itemrequest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// CreateRequest files a pending request owned by the subject.
func (s *Service) CreateRequest(ctx context.Context, input CreateRequestInput) (*domain.ItemRequest, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := domain.ItemRequest{
		ID:          uuid.New(),
		RequesterID: subject.ID,
		Title:       strings.TrimSpace(input.Title),
		Author:      strings.TrimSpace(input.Author),
		ISBN:        trimOrNil(input.ISBN),
		Note:        trimOrNil(input.Note),
		Status:      domain.RequestStatusPending,
	}
	if err := policy.Requests.Check(ctx, subject, policy.ActionInsert, row); err != nil {
		return nil, err
	}

	created, err := s.requests.Create(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("itemrequest.CreateRequest: %w", err)
	}

	s.log.InfoContext(ctx, "item requested",
		slog.String("user_id", subject.ID.String()),
		slog.String("request_id", created.ID.String()),
	)
	return created, nil
}

// GetRequest returns a request visible to the subject. Other accounts'
// requests are reported as not found.
func (s *Service) GetRequest(ctx context.Context, id uuid.UUID) (*domain.ItemRequest, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("itemrequest.GetRequest: %w", err)
	}
	if err := policy.Requests.Check(ctx, policy.SubjectFromCtx(ctx), policy.ActionRead, *req); err != nil {
		return nil, fmt.Errorf("itemrequest.GetRequest %s: %w", id, err)
	}
	return req, nil
}

// ListRequests returns requests newest first. A regular subject always gets
// only their own requests, whatever the filter says; admins may list all.
func (s *Service) ListRequests(ctx context.Context, filter domain.ItemRequestFilter) ([]domain.ItemRequest, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be one of: pending approved rejected")
	}
	if !subject.IsAdmin() {
		own := subject.ID
		filter.RequesterID = &own
	}

	reqs, err := s.requests.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("itemrequest.ListRequests: %w", err)
	}
	return policy.Filter(policy.Requests, subject, reqs), nil
}

// ResolveRequest approves or rejects a pending request (admin only).
// Resolving a request twice fails with a ConflictError.
func (s *Service) ResolveRequest(ctx context.Context, input ResolveRequestInput) (*domain.ItemRequest, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// The update rule does not depend on the row, so no fetch is needed.
	if err := policy.Requests.Check(ctx, subject, policy.ActionUpdate, domain.ItemRequest{ID: input.RequestID}); err != nil {
		return nil, err
	}

	resolved, err := s.requests.Resolve(ctx, input.RequestID, input.Outcome, trimOrNil(input.AdminNote), subject.ID)
	if err != nil {
		return nil, fmt.Errorf("itemrequest.ResolveRequest: %w", err)
	}

	s.log.InfoContext(ctx, "item request resolved",
		slog.String("user_id", subject.ID.String()),
		slog.String("request_id", resolved.ID.String()),
		slog.String("outcome", resolved.Status.String()),
	)
	return resolved, nil
}
