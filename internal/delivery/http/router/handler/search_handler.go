package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"dealhub/internal/delivery/http/response"
	"dealhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SearchHandler holds dependencies for catalog search handlers.
type SearchHandler struct {
	uc     usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(uc usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{uc: uc, logger: logger}
}

// SearchDeals matches the query against deal titles and descriptions.
func (h *SearchHandler) SearchDeals(c echo.Context) error {
	query, limit, err := searchParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	deals, err := h.uc.SearchDeals(c.Request().Context(), query, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deals, "")
}

// SearchStores matches the query against store names and descriptions.
func (h *SearchHandler) SearchStores(c echo.Context) error {
	query, limit, err := searchParams(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	stores, err := h.uc.SearchStores(c.Request().Context(), query, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "")
}

func searchParams(c echo.Context) (string, int, error) {
	query := c.QueryParam("q")

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return "", 0, errors.New("limit must be a non-negative integer")
		}
		limit = parsed
	}

	return query, limit, nil
}
