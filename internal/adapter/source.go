package adapter

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/YZcontent/yz-ad-club-backend/internal/config"
	"github.com/YZcontent/yz-ad-club-backend/internal/logger"
	"github.com/YZcontent/yz-ad-club-backend/internal/utils"
	"github.com/YZcontent/yz-ad-club-backend/models"
)

const defaultContentType = "application/octet-stream"

// preferredExtensions covers the types catalogs usually serve;
// mime.ExtensionsByType is consulted for anything else.
var preferredExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"image/webp":      ".webp",
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
	"application/pdf": ".pdf",
}

type httpSourceFetcher struct {
	client   *utils.HTTPClient
	maxBytes int64
	now      func() time.Time

	logger *logger.Logger
}

// NewSourceFetcher constructs a [SourceFetcher] bounded by
// cfg.MaxDownloadBytes and cfg.RequestTimeout.
func NewSourceFetcher(cfg config.Yodeck, logger *logger.Logger) SourceFetcher {
	client := utils.NewHTTPClient(utils.HTTPClientOptions{Timeout: cfg.RequestTimeout})

	return &httpSourceFetcher{
		client:   client,
		maxBytes: cfg.MaxDownloadBytes,
		now:      time.Now,
		logger:   logger,
	}
}

// Fetch implements [SourceFetcher].
func (f *httpSourceFetcher) Fetch(ctx context.Context, url string) (models.MediaFile, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(url)
	if err != nil {
		return models.MediaFile{}, fmt.Errorf("%w: %w", ErrDownload, err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		return models.MediaFile{}, fmt.Errorf("%w: %s answered %d", ErrDownload, url, resp.StatusCode())
	}

	reader := io.Reader(body)
	if f.maxBytes > 0 {
		reader = io.LimitReader(body, f.maxBytes+1)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.MediaFile{}, fmt.Errorf("%w: read body: %w", ErrDownload, err)
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return models.MediaFile{}, fmt.Errorf("%w: source exceeds %d bytes", ErrDownload, f.maxBytes)
	}

	contentType := mediaTypeOf(resp.Header().Get("Content-Type"))
	fileName := fileNameFromDisposition(resp.Header().Get("Content-Disposition"))
	if fileName == "" {
		fileName = "content-" + strconv.FormatInt(f.now().UnixMilli(), 10) + extensionFor(contentType)
	}

	f.logger.Debug().
		Str("func", "httpSourceFetcher.Fetch").
		Str("file_name", fileName).
		Str("content_type", contentType).
		Int("bytes", len(data)).
		Msg("source downloaded")

	return models.MediaFile{FileName: fileName, ContentType: contentType, Data: data}, nil
}

func mediaTypeOf(header string) string {
	if header == "" {
		return defaultContentType
	}
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return defaultContentType
	}
	return mediaType
}

// fileNameFromDisposition returns the base name of the filename parameter,
// or "" when the header is absent or unusable.
func fileNameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}

	name := strings.TrimSpace(params["filename"])
	if name == "" {
		return ""
	}
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func extensionFor(contentType string) string {
	if ext, ok := preferredExtensions[contentType]; ok {
		return ext
	}
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
