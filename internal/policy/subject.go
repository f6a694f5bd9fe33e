package policy

import (
	"context"
	"log/slog"

	"github.com/bookhive/bookhive-backend/internal/domain"
	"github.com/bookhive/bookhive-backend/pkg/ctxutil"
)

// SubjectFromCtx builds the caller's subject from the identity carried in
// ctx. Missing identity yields the anonymous subject; an unrecognized role
// claim is treated as a regular user.
func SubjectFromCtx(ctx context.Context) domain.Subject {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Subject{}
	}
	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	if !role.IsValid() {
		role = domain.UserRoleUser
	}
	return domain.Subject{ID: id, Role: role}
}

type maintenanceKey struct{}

type maintenance struct {
	actor  string
	reason string
	log    *slog.Logger
}

// WithMaintenance marks ctx as an operator maintenance session. Every
// policy denial evaluated under it is bypassed and logged at Warn.
// It is the only bypass; nothing on a request path may call it.
func WithMaintenance(ctx context.Context, log *slog.Logger, actor, reason string) context.Context {
	if log == nil {
		log = slog.Default()
	}
	log.WarnContext(ctx, "maintenance session started",
		slog.String("actor", actor),
		slog.String("reason", reason),
	)
	return context.WithValue(ctx, maintenanceKey{}, maintenance{actor: actor, reason: reason, log: log})
}

// IsMaintenance reports whether ctx carries a maintenance session.
func IsMaintenance(ctx context.Context) bool {
	_, ok := maintenanceFromCtx(ctx)
	return ok
}

func maintenanceFromCtx(ctx context.Context) (maintenance, bool) {
	m, ok := ctx.Value(maintenanceKey{}).(maintenance)
	return m, ok
}
