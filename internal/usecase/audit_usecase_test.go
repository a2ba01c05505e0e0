package usecase_test

import (
	"context"
	"testing"

	"borteh/internal/domain/model"
	repo "borteh/internal/repository"
	"borteh/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuditUsecase_ListAuditLogs_DefaultLimit(t *testing.T) {
	aRepo := new(AuditRepoMock)
	uc := usecase.NewAuditUsecase(aRepo)

	aRepo.On("List", mock.Anything, mock.MatchedBy(func(f repo.AuditLogFilter) bool {
		return f.Limit == 50 && f.Offset == 0 && f.Action == nil
	})).Return([]model.AuditLog{{ID: 1}}, nil)

	logs, err := uc.ListAuditLogs(context.Background(), usecase.ListAuditLogsInput{})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(logs))

	aRepo.AssertExpectations(t)
}

func TestAuditUsecase_ListAuditLogs_InvalidLimit(t *testing.T) {
	uc := usecase.NewAuditUsecase(new(AuditRepoMock))

	_, err := uc.ListAuditLogs(context.Background(), usecase.ListAuditLogsInput{Limit: 101})
	assertErrContains(t, err, "invalid limit")
}

func TestAuditUsecase_ListAuditLogs_ActionFilter(t *testing.T) {
	aRepo := new(AuditRepoMock)
	uc := usecase.NewAuditUsecase(aRepo)

	aRepo.On("List", mock.Anything, mock.MatchedBy(func(f repo.AuditLogFilter) bool {
		return f.Action != nil && *f.Action == model.AuditActionDeleteCategory
	})).Return([]model.AuditLog{}, nil)

	_, err := uc.ListAuditLogs(context.Background(), usecase.ListAuditLogsInput{Action: "DELETE_CATEGORY"})
	assert.NoError(t, err)

	aRepo.AssertExpectations(t)
}
