package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/errors"
	"github.com/johnquangdev/mom-generator/internal/adapter/dto/common"
	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

const genericErrorMessage = "Something went wrong"

// ErrorHandler centralizes error translation, logging and rendering.
// Internal error text is only exposed when exposeInternal is set.
type ErrorHandler struct {
	logger         *zap.Logger
	exposeInternal bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *zap.Logger, exposeInternal bool) *ErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorHandler{logger: logger, exposeInternal: exposeInternal}
}

// HandleError writes the JSON error body for err
func (h *ErrorHandler) HandleError(c echo.Context, err error) error {
	appErr := toAppError(err)

	fields := []zap.Field{
		zap.String("request_id", getRequestID(c)),
		zap.String("path", c.Path()),
		zap.Stringer("app_code", appErr.Code),
		zap.Error(err),
	}
	if appErr.HTTPCode >= http.StatusInternalServerError {
		h.logger.Error("http.response.error", fields...)
	} else {
		h.logger.Warn("http.response.error", fields...)
	}

	return c.JSON(appErr.HTTPCode, h.body(appErr))
}

// HTTPErrorHandler plugs HandleError into echo for errors returned by
// middleware and the router
func (h *ErrorHandler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	if werr := h.HandleError(c, err); werr != nil {
		h.logger.Error("failed to write error response", zap.Error(werr))
	}
}

func (h *ErrorHandler) body(appErr errors.AppError) common.ErrorResponse {
	if appErr.HTTPCode >= http.StatusInternalServerError {
		message := genericErrorMessage
		if h.exposeInternal {
			message = appErr.Message
			if appErr.Raw != nil {
				message = appErr.Raw.Error()
			}
		}
		return common.ErrorResponse{Error: "Internal server error", Message: message}
	}

	resp := common.ErrorResponse{Error: appErr.Message}
	if len(appErr.Violations) > 0 {
		details := make([]common.FieldError, 0, len(appErr.Violations))
		for _, v := range appErr.Violations {
			path := v.Path
			if path == nil {
				path = []string{}
			}
			details = append(details, common.FieldError{Path: path, Message: v.Message})
		}
		resp.Details = details
	}
	return resp
}

// toAppError maps domain and framework errors onto the application taxonomy
func toAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var verrs entities.ValidationErrors
	if stdErrors.As(err, &verrs) {
		violations := make([]errors.Violation, 0, len(verrs))
		for _, v := range verrs {
			violations = append(violations, errors.Violation{Path: v.Path, Message: v.Message})
		}
		return errors.ErrValidation(err, violations...)
	}

	var genErr *entities.GenerationError
	if stdErrors.As(err, &genErr) {
		return errors.ErrGenerationFailed(err)
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			return errors.ErrInternal(err)
		}
		return errors.ErrHTTP(httpErr.Code, fmt.Sprint(httpErr.Message))
	}

	return errors.ErrInternal(err)
}

// getRequestID reads the id assigned by the request id middleware, falling
// back to the one the client sent
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}
