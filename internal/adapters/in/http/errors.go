package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"orderservice/internal/generated/servers"
	"orderservice/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "An error occurred while processing the request"

// errorResponse renders a use-case error by its taxonomy class. Internal
// failures are logged with their cause and rendered without it.
func (s *Server) errorResponse(ctx echo.Context, err error) error {
	switch {
	case errs.IsInvalidArgument(err):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errs.IsNotFound(err):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: internalErrorMessage,
		})
	}
}

// badRequest reports cause as details. Only the first line is kept since
// schema validation errors append a dump of the schema and value.
func badRequest(ctx echo.Context, message string, cause error) error {
	details, _, _ := strings.Cut(cause.Error(), "\n")
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
		Details: &details,
	})
}

// httpErrorHandler renders errors returned outside the Server methods
// (routing, parameter binding) in the same body shape.
func httpErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := internalErrorMessage
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			if code < http.StatusInternalServerError {
				message = fmt.Sprint(httpErr.Message)
			}
		}
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Unhandled request error", "path", ctx.Path(), "error", err)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, servers.Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}
