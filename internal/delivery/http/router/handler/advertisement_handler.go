package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"dealhub/internal/delivery/http/response"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdvertisementHandler holds dependencies for banner handlers.
type AdvertisementHandler struct {
	uc     usecase.AdvertisementUsecase
	logger *slog.Logger
}

// NewAdvertisementHandler is the constructor for AdvertisementHandler, injected by Fx.
func NewAdvertisementHandler(uc usecase.AdvertisementUsecase, logger *slog.Logger) *AdvertisementHandler {
	return &AdvertisementHandler{uc: uc, logger: logger}
}

type advertisementRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CTAText     string `json:"cta_text"`
	CTALink     string `json:"cta_link"`
	BgColor     string `json:"bg_color"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

type reorderRequest struct {
	IDA string `json:"id_a" validate:"required,uuid"`
	IDB string `json:"id_b" validate:"required,uuid"`
}

func (r *advertisementRequest) toInput() *usecase.AdvertisementInput {
	return &usecase.AdvertisementInput{
		Title:       r.Title,
		Description: r.Description,
		CTAText:     r.CTAText,
		CTALink:     r.CTALink,
		BgColor:     r.BgColor,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
	}
}

// ListAdvertisements returns banners in rotation order. The public
// listing serves only active banners; `all=true` includes inactive ones
// and is registered on the admin surface.
func (h *AdvertisementHandler) ListAdvertisements(c echo.Context) error {
	activeOnly := true
	if raw := c.QueryParam("all"); raw != "" {
		all, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_QUERY", "all must be a boolean")
		}
		activeOnly = !all
	}

	ads, err := h.uc.ListAdvertisements(c.Request().Context(), activeOnly)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ads, "")
}

// ListActiveAdvertisements returns the active banners for the public site.
func (h *AdvertisementHandler) ListActiveAdvertisements(c echo.Context) error {
	ads, err := h.uc.ListAdvertisements(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ads, "")
}

// CreateAdvertisement appends a banner at the end of the rotation.
func (h *AdvertisementHandler) CreateAdvertisement(c echo.Context) error {
	var req advertisementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advertisement input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ad, err := h.uc.CreateAdvertisement(c.Request().Context(), req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ad, "Advertisement created")
}

// UpdateAdvertisement applies changes to an existing banner.
func (h *AdvertisementHandler) UpdateAdvertisement(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid advertisement id")
	}

	var req advertisementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid advertisement input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ad, err := h.uc.UpdateAdvertisement(c.Request().Context(), id, req.toInput())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ad, "Advertisement updated")
}

// DeleteAdvertisement removes a banner from the rotation.
func (h *AdvertisementHandler) DeleteAdvertisement(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid advertisement id")
	}

	if err := h.uc.DeleteAdvertisement(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Advertisement deleted")
}

// ReorderAdvertisements swaps the display positions of two banners.
func (h *AdvertisementHandler) ReorderAdvertisements(c echo.Context) error {
	var req reorderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reorder input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	idA, err := uuid.Parse(req.IDA)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid advertisement id")
	}
	idB, err := uuid.Parse(req.IDB)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid advertisement id")
	}

	if err := h.uc.ReorderAdvertisements(c.Request().Context(), idA, idB); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Advertisements reordered")
}
