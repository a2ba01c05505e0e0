package usecase

import (
	"context"
	"net/http"

	"borteh/internal/domain/model"
	repo "borteh/internal/repository"
)

// AuditUsecase は管理者操作ログの閲覧。
type AuditUsecase struct {
	auditRepo repo.AuditLogRepository
}

// DI
func NewAuditUsecase(auditRepo repo.AuditLogRepository) *AuditUsecase {
	return &AuditUsecase{auditRepo: auditRepo}
}

type ListAuditLogsInput struct {
	Action     string
	ResourceID int64
	Limit      int
	Offset     int
}

// ListAuditLogs は新しい順で監査ログを返す。limitは1〜100（デフォルト50）。
func (u *AuditUsecase) ListAuditLogs(ctx context.Context, in ListAuditLogsInput) ([]model.AuditLog, error) {
	if in.Limit <= 0 {
		in.Limit = 50
	}
	if in.Limit > 100 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	if in.Offset < 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid offset")
	}

	filter := repo.AuditLogFilter{
		Limit:  in.Limit,
		Offset: in.Offset,
	}
	if in.Action != "" {
		action := model.AuditAction(in.Action)
		filter.Action = &action
	}
	if in.ResourceID > 0 {
		filter.ResourceID = &in.ResourceID
	}

	logs, err := u.auditRepo.List(ctx, filter)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return logs, nil
}
