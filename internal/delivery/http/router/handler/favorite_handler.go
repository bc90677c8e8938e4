package handler

import (
	"log/slog"
	"net/http"

	"dealhub/internal/delivery/http/middleware"
	"dealhub/internal/delivery/http/response"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FavoriteHandler holds dependencies for saved-deal handlers.
type FavoriteHandler struct {
	uc     usecase.FavoriteUsecase
	logger *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler, injected by Fx.
func NewFavoriteHandler(uc usecase.FavoriteUsecase, logger *slog.Logger) *FavoriteHandler {
	return &FavoriteHandler{uc: uc, logger: logger}
}

// ListFavorites returns the authenticated user's saved deals, newest first.
func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	favorites, err := h.uc.ListFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, favorites, "")
}

// AddFavorite saves a deal for the authenticated user. Saving twice is
// not an error.
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	dealID, err := uuid.Parse(c.Param("dealID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal id")
	}

	if err := h.uc.AddFavorite(c.Request().Context(), userID, dealID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Deal saved")
}

// RemoveFavorite deletes the saved deal for the authenticated user.
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	dealID, err := uuid.Parse(c.Param("dealID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal id")
	}

	if err := h.uc.RemoveFavorite(c.Request().Context(), userID, dealID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deal removed from favorites")
}
