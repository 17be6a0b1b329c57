package http

import (
	"net/http"

	"github.com/YZcontent/yz-ad-club-backend/internal/utils"
)

// getServerVersion writes the configured version on the first line followed
// by the build metadata.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	utils.WriteText(w, serverVersion+"\n"+build.String(), http.StatusOK)
}
