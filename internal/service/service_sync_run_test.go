package service

import (
	"context"
	"errors"
	"testing"

	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/mock"
	"github.com/YZcontent/yz-ad-club-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSyncRunService_JournalDisabled(t *testing.T) {
	svc := NewSyncRunService(nil, logger.Nop())

	runs, err := svc.ListRuns(context.Background(), models.SyncRunFilter{})

	assert.Nil(t, runs)
	assert.ErrorIs(t, err, ErrJournalDisabled)
}

func TestSyncRunService_Limits(t *testing.T) {
	tests := []struct {
		name      string
		limit     uint64
		wantLimit uint64
	}{
		{name: "default", limit: 0, wantLimit: 20},
		{name: "kept", limit: 5, wantLimit: 5},
		{name: "at cap", limit: 100, wantLimit: 100},
		{name: "capped", limit: 1000, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mock.NewMockSyncRunRepository(ctrl)
			repo.EXPECT().
				ListRuns(gomock.Any(), models.SyncRunFilter{BusinessID: "biz", Limit: tt.wantLimit}).
				Return([]models.SyncRun{{ID: "r1"}}, nil)

			runs, err := NewSyncRunService(repo, logger.Nop()).
				ListRuns(context.Background(), models.SyncRunFilter{BusinessID: "biz", Limit: tt.limit})

			require.NoError(t, err)
			assert.Len(t, runs, 1)
		})
	}
}

func TestSyncRunService_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repoErr := errors.New("connection refused")
	repo := mock.NewMockSyncRunRepository(ctrl)
	repo.EXPECT().ListRuns(gomock.Any(), gomock.Any()).Return(nil, repoErr)

	_, err := NewSyncRunService(repo, logger.Nop()).ListRuns(context.Background(), models.SyncRunFilter{})

	assert.ErrorIs(t, err, repoErr)
}
