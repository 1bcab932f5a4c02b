package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type errorBody struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}

// status maps err onto the HTTP status and body the API answers with.
// Internal failures never leak their message.
func status(err error) (int, errorBody) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorBody{Error: ve.Error(), Title: "validation error"}
	}

	var ee *ExtractionError
	if errors.As(err, &ee) {
		return http.StatusUnprocessableEntity, errorBody{Error: ee.Error(), Title: "extraction error"}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorBody{Error: fmt.Sprintf("%v", he.Message)}
	}

	return http.StatusInternalServerError, errorBody{Error: "internal server error"}
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := status(err)
		switch {
		case code >= http.StatusInternalServerError:
			slog.Error("Unhandled error", "path", c.Path(), "error", err)
		case code == http.StatusUnprocessableEntity:
			slog.Info("Extraction failed", "path", c.Path(), "error", err)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}
