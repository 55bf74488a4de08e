package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/adapter/presenter"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/http/middleware"
	momuse "github.com/johnquangdev/mom-generator/internal/usecase/mom"
)

// MOM handles minutes generation requests
type MOM struct {
	svc    momuse.Service
	errors *ErrorHandler
	logger *zap.Logger
}

// NewMOM creates a new MOM handler
func NewMOM(svc momuse.Service, errors *ErrorHandler, logger *zap.Logger) *MOM {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MOM{svc: svc, errors: errors, logger: logger}
}

// Generate turns raw meeting notes into structured minutes
// @Summary      Generate minutes of meeting
// @Description  Converts free-form meeting notes into structured minutes with PPT, Markdown and plaintext renderings
// @Tags         MOM
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      mom.GenerateRequest     true  "Meeting notes and metadata"
// @Success      200      {object}  mom.GenerateResponse    "Generated minutes"
// @Failure      400      {object}  common.ErrorResponse    "Validation error"
// @Failure      401      {object}  common.ErrorResponse    "Missing or invalid token"
// @Failure      403      {object}  common.ErrorResponse    "User not authorized"
// @Failure      500      {object}  common.ErrorResponse    "Generation failed"
// @Router       /api/generate [post]
func (h *MOM) Generate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return h.errors.HandleError(c, err)
	}

	req, err := h.svc.ParseRequest(body)
	if err != nil {
		return h.errors.HandleError(c, err)
	}

	fields := []zap.Field{
		zap.String("request_id", getRequestID(c)),
		zap.String("style", string(req.Style)),
		zap.Int("notes_length", len(req.RawNotes)),
	}
	if user, ok := middleware.GetUser(c); ok {
		fields = append(fields, zap.String("uid", user.UID))
	}
	h.logger.Info("generating MOM", fields...)

	resp, err := h.svc.Generate(c.Request().Context(), req)
	if err != nil {
		return h.errors.HandleError(c, err)
	}

	return c.JSON(http.StatusOK, presenter.ToGenerateResponse(resp))
}
