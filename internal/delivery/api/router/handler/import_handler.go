package handler

import (
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"locator/internal/delivery/api/response"
	deliverycontext "locator/internal/delivery/context"
	domainerrors "locator/internal/domain/errors"
	"locator/internal/errors"
	"locator/internal/usecase"
	"locator/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const importFormField = "file"

// ImportHandlerParams holds dependencies for ImportHandler, injected by Fx.
type ImportHandlerParams struct {
	fx.In

	ImportUC usecase.ImportUsecase
	Logger   *slog.Logger
}

// ImportHandler serves bulk CSV import
type ImportHandler struct {
	importUC usecase.ImportUsecase
	logger   *slog.Logger
}

// NewImportHandler is the constructor for ImportHandler
func NewImportHandler(params ImportHandlerParams) *ImportHandler {
	return &ImportHandler{
		importUC: params.ImportUC,
		logger:   params.Logger,
	}
}

// Import upserts every row of the uploaded CSV and returns the per-row report
func (h *ImportHandler) Import(c echo.Context) error {
	fileHeader, err := c.FormFile(importFormField)
	if err != nil {
		return domainerrors.ErrInvalidCSVFile.WithDetails("multipart field \"file\" is required")
	}

	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		return domainerrors.ErrInvalidCSVFile.WithDetails("unsupported file: " + fileHeader.Filename)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
	logger.Info("Store import started",
		slog.String("filename", fileHeader.Filename),
		slog.String("size", util.FormatBytes(fileHeader.Size)),
	)

	start := time.Now()
	source := util.NewChecksumReader(file)
	report, err := h.importUC.Import(c.Request().Context(), source)
	if err != nil {
		return err
	}

	logger.Info("Store import finished",
		slog.String("filename", fileHeader.Filename),
		slog.String("sha256", source.Sum()),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
		slog.Int("created", report.Created),
		slog.Int("updated", report.Updated),
		slog.Int("failed", report.Failed),
	)

	return response.OK(c, report)
}
