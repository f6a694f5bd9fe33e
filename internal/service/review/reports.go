package review

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/internal/policy"
)

// ReportReview flags a review for moderation on behalf of the subject.
func (s *Service) ReportReview(ctx context.Context, input ReportReviewInput) (*domain.ReviewReport, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	row := domain.ReviewReport{
		ID:          uuid.New(),
		ReviewID:    input.ReviewID,
		ReporterID:  subject.ID,
		Reason:      input.Reason,
		Description: trimOrNil(input.Description),
		Status:      domain.ReportStatusPending,
	}
	if err := policy.Reports.Check(ctx, subject, policy.ActionInsert, row); err != nil {
		return nil, err
	}

	created, err := s.reports.Create(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("review.ReportReview: %w", err)
	}

	s.log.InfoContext(ctx, "review reported",
		slog.String("user_id", subject.ID.String()),
		slog.String("review_id", created.ReviewID.String()),
		slog.String("report_id", created.ID.String()),
		slog.String("reason", created.Reason.String()),
	)
	return created, nil
}

// ResolveReport moves a pending report to its outcome (admin only). An
// actionTaken outcome flags the reported review in the same transaction.
// Resolving a report twice fails with a ConflictError.
func (s *Service) ResolveReport(ctx context.Context, input ResolveReportInput) (*domain.ReviewReport, error) {
	subject := policy.SubjectFromCtx(ctx)
	// Role gate before the lookup: a non-admin learns nothing about which
	// report ids exist.
	if !subject.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var resolved *domain.ReviewReport
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.reports.GetByID(ctx, input.ReportID)
		if err != nil {
			return err
		}
		if err := policy.Reports.Check(ctx, subject, policy.ActionUpdate, *current); err != nil {
			return err
		}
		if resolved, err = s.reports.Resolve(ctx, current.ID, input.Outcome, subject.ID); err != nil {
			return err
		}
		if resolved.Status == domain.ReportStatusActionTaken {
			return s.reviews.SetFlagged(ctx, resolved.ReviewID, true)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("review.ResolveReport: %w", err)
	}

	s.log.InfoContext(ctx, "report resolved",
		slog.String("user_id", subject.ID.String()),
		slog.String("report_id", resolved.ID.String()),
		slog.String("outcome", resolved.Status.String()),
	)
	return resolved, nil
}

// GetReport returns a report. Non-admins get ErrNotFound.
func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*domain.ReviewReport, error) {
	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review.GetReport: %w", err)
	}
	if err := policy.Reports.Check(ctx, policy.SubjectFromCtx(ctx), policy.ActionRead, *rep); err != nil {
		return nil, fmt.Errorf("review.GetReport %s: %w", id, err)
	}
	return rep, nil
}

// ListReports returns the moderation queue, optionally narrowed by status (admin only).
func (s *Service) ListReports(ctx context.Context, status *domain.ReportStatus, limit, offset int) ([]domain.ReviewReport, error) {
	subject := policy.SubjectFromCtx(ctx)
	if !subject.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown report status")
	}

	reports, err := s.reports.List(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("review.ListReports: %w", err)
	}
	return policy.Filter(policy.Reports, subject, reports), nil
}
