package service

import (
	"testing"

	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/metrics"
	"github.com/YZcontent/yz-ad-club-backend/internal/mock"
	"github.com/YZcontent/yz-ad-club-backend/internal/store"
	"github.com/YZcontent/yz-ad-club-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewServices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	services, err := NewServices(&cfg, models.AppBuildInfo{}, &store.Storages{},
		mock.NewMockMediaLibrary(ctrl), mock.NewMockSourceFetcher(ctrl), metrics.Nop(), logger.Nop())

	require.NoError(t, err)
	assert.IsType(t, &SyncValidationService{}, services.SyncService)
	assert.NotNil(t, services.SyncRunService)
	assert.NotNil(t, services.AppInfoService)
}

func TestNewServices_UnknownStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Yodeck.UploadStrategy = "ftp"

	_, err := NewServices(&cfg, models.AppBuildInfo{}, &store.Storages{},
		mock.NewMockMediaLibrary(ctrl), mock.NewMockSourceFetcher(ctrl), metrics.Nop(), logger.Nop())

	assert.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestNewServices_NoVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.App.Version = ""

	_, err := NewServices(&cfg, models.AppBuildInfo{}, &store.Storages{},
		mock.NewMockMediaLibrary(ctrl), mock.NewMockSourceFetcher(ctrl), metrics.Nop(), logger.Nop())

	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
