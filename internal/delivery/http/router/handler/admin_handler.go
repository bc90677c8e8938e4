package handler

import (
	"log/slog"
	"net/http"

	"dealhub/internal/delivery/http/middleware"
	"dealhub/internal/delivery/http/response"
	"dealhub/internal/domain/entity"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for back-office grant handlers.
type AdminHandler struct {
	uc     usecase.AdminUsecase
	logger *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(uc usecase.AdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{uc: uc, logger: logger}
}

type makeAdminRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Role   string `json:"role" validate:"required"`
}

// GetMe returns the grant held by the calling administrator.
func (h *AdminHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	admin, err := h.uc.GetAdminForUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admin, "")
}

// ListAdmins returns all grant records.
func (h *AdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.uc.ListAdmins(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, admins, "")
}

// MakeAdmin grants back-office access to a user.
func (h *AdminHandler) MakeAdmin(c echo.Context) error {
	var req makeAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid grant input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user id")
	}

	admin, err := h.uc.MakeAdmin(c.Request().Context(), userID, entity.Role(req.Role))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, admin, "Admin access granted")
}

// RemoveAdmin revokes a grant record. Self-revocation is refused.
func (h *AdminHandler) RemoveAdmin(c echo.Context) error {
	actorUserID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "MISSING_TOKEN", "Authentication required")
	}

	grantID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid grant id")
	}

	if err := h.uc.RemoveAdmin(c.Request().Context(), actorUserID, grantID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Admin access revoked")
}
