package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/YZcontent/yz-ad-club-backend/internal/adapter"
	"github.com/YZcontent/yz-ad-club-backend/internal/mock"
	"github.com/YZcontent/yz-ad-club-backend/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestExecutor(ctrl *gomock.Controller) (*itemExecutor, *mock.MockUploader, *recordingMetrics) {
	uploader := mock.NewMockUploader(ctrl)
	rec := newRecordingMetrics()

	return &itemExecutor{
		uploader: uploader,
		strategy: "reference",
		baseTags: []string{"base44", "upload"},
		metrics:  rec,
		now:      func() time.Time { return fixedNow },
	}, uploader, rec
}

var testCreds = models.Credentials{Label: "label", Token: "token"}

func TestItemExecutor_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec, uploader, rec := newTestExecutor(ctrl)
	uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), testCreds).
		Return(models.MediaRecord{ID: models.Identifier("981"), Name: "Menu (yodeck)"}, nil)

	got := exec.Execute(context.Background(), item("7", "Menu", "image", "https://cdn.test/m.png"), "Cafe", testCreds)

	assert.Equal(t, models.ItemResult{
		ContentID: models.Identifier("7"),
		Status:    models.ItemStatusSuccess,
		YodeckID:  models.Identifier("981"),
		Name:      "Menu (yodeck)",
	}, got)
	assert.Equal(t, 1, rec.items[models.ItemStatusSuccess])
}

func TestItemExecutor_NameFallsBackToUploadName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec, uploader, _ := newTestExecutor(ctrl)
	uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.MediaRecord{ID: models.Identifier("1")}, nil)

	got := exec.Execute(context.Background(), item(`"a"`, "", "video", "https://cdn.test/v.mp4"), "", testCreds)

	assert.Equal(t, "Content-1700000000000", got.Name)
}

func TestItemExecutor_PassesMappedUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec, uploader, _ := newTestExecutor(ctrl)
	uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, upload models.MediaUpload, _ models.Credentials) (models.MediaRecord, error) {
			assert.Equal(t, models.MediaTypeImage, upload.MediaType)
			assert.Equal(t, []string{"base44", "upload", "Cafe"}, upload.Tags)
			assert.Equal(t, "https://cdn.test/site", upload.SourceURL)
			return models.MediaRecord{ID: models.Identifier("2")}, nil
		})

	got := exec.Execute(context.Background(), item("3", "Site", "webpage", "https://cdn.test/site"), "Cafe", testCreds)

	assert.Equal(t, models.ItemStatusSuccess, got.Status)
}

func TestItemExecutor_MissingFileURL_NoUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec, _, rec := newTestExecutor(ctrl)

	got := exec.Execute(context.Background(), item("9", "Empty", "image", "  "), "", testCreds)

	assert.Equal(t, models.ItemStatusError, got.Status)
	assert.Equal(t, ErrMissingFileURL.Error(), got.Error)
	assert.Empty(t, got.YodeckID)
	assert.Equal(t, 1, rec.items[models.ItemStatusError])
}

func TestItemExecutor_DecodeErrorFailsWithoutUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec, _, rec := newTestExecutor(ctrl)
	bad := models.ContentItem{ID: models.Identifier("2"), DecodeErr: fmt.Errorf("invalid duration %q", "abc")}

	got := exec.Execute(context.Background(), bad, "Cafe", testCreds)

	assert.Equal(t, models.Identifier("2"), got.ContentID)
	assert.Equal(t, models.ItemStatusError, got.Status)
	assert.Contains(t, got.Error, `invalid duration "abc"`)
	assert.Equal(t, 1, rec.items[models.ItemStatusError])
}

func TestItemExecutor_UploadErrorBecomesItemError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec, uploader, _ := newTestExecutor(ctrl)
	uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.MediaRecord{}, fmt.Errorf("%w: Invalid token (status 401)", adapter.ErrUpstream))

	got := exec.Execute(context.Background(), item("4", "Menu", "image", "https://cdn.test/m.png"), "", testCreds)

	assert.Equal(t, models.ItemResult{
		ContentID: models.Identifier("4"),
		Status:    models.ItemStatusError,
		Error:     "yodeck upload failed: Invalid token (status 401)",
	}, got)
}

func TestItemExecutor_RecoversPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	exec, uploader, rec := newTestExecutor(ctrl)
	uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.MediaUpload, models.Credentials) (models.MediaRecord, error) {
			panic("boom")
		})

	var got models.ItemResult
	assert.NotPanics(t, func() {
		got = exec.Execute(context.Background(), item("5", "Menu", "image", "https://cdn.test/m.png"), "", testCreds)
	})

	assert.Equal(t, models.ItemStatusError, got.Status)
	assert.Equal(t, models.Identifier("5"), got.ContentID)
	assert.Contains(t, got.Error, "boom")
	assert.Equal(t, 1, rec.items[models.ItemStatusError])
}
