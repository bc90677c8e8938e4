package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"dealhub/internal/delivery/http/response"
	"dealhub/internal/domain/entity"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DealHandler holds dependencies for deal catalog handlers.
type DealHandler struct {
	uc      usecase.DealUsecase
	assetUc usecase.AssetUsecase
	logger  *slog.Logger
}

// NewDealHandler is the constructor for DealHandler, injected by Fx.
func NewDealHandler(uc usecase.DealUsecase, assetUc usecase.AssetUsecase, logger *slog.Logger) *DealHandler {
	return &DealHandler{uc: uc, assetUc: assetUc, logger: logger}
}

type dealRequest struct {
	Title         string     `json:"title" validate:"required"`
	Description   string     `json:"description"`
	Discount      string     `json:"discount"`
	Code          string     `json:"code"`
	Type          string     `json:"type" validate:"required"`
	StoreID       string     `json:"store_id" validate:"required,uuid"`
	Category      string     `json:"category"`
	URL           string     `json:"url"`
	Featured      bool       `json:"featured"`
	Verified      bool       `json:"verified"`
	Price         *float64   `json:"price"`
	OriginalPrice *float64   `json:"original_price"`
	ProductImage  string     `json:"product_image"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

func (r *dealRequest) toInput() (*usecase.DealInput, error) {
	storeID, err := uuid.Parse(r.StoreID)
	if err != nil {
		return nil, err
	}

	return &usecase.DealInput{
		Title:         r.Title,
		Description:   r.Description,
		Discount:      r.Discount,
		Code:          r.Code,
		Type:          entity.DealType(r.Type),
		StoreID:       storeID,
		Category:      r.Category,
		URL:           r.URL,
		Featured:      r.Featured,
		Verified:      r.Verified,
		Price:         r.Price,
		OriginalPrice: r.OriginalPrice,
		ProductImage:  r.ProductImage,
		ExpiresAt:     r.ExpiresAt,
	}, nil
}

// ListDeals handles the public deal listing with optional filters.
func (h *DealHandler) ListDeals(c echo.Context) error {
	filter, err := dealFilterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	deals, err := h.uc.ListDeals(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deals, "")
}

// GetDeal returns a single deal by ID.
func (h *DealHandler) GetDeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal id")
	}

	deal, err := h.uc.GetDeal(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "")
}

// UseDeal records that a visitor revealed or followed the deal.
func (h *DealHandler) UseDeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal id")
	}

	if err := h.uc.IncrementUsedCount(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deal usage recorded")
}

// GetRedemptionQR serves the in-store redemption QR code as a PNG.
func (h *DealHandler) GetRedemptionQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal id")
	}

	png, err := h.uc.GetRedemptionQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CreateDeal handles the admin deal creation request.
func (h *DealHandler) CreateDeal(c echo.Context) error {
	var req dealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	deal, err := h.uc.CreateDeal(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, deal, "Deal created")
}

// UpdateDeal handles the admin deal update request.
func (h *DealHandler) UpdateDeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal id")
	}

	var req dealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid deal input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid store id")
	}

	deal, err := h.uc.UpdateDeal(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, deal, "Deal updated")
}

// DeleteDeal handles the admin deal deletion request.
func (h *DealHandler) DeleteDeal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal id")
	}

	if err := h.uc.DeleteDeal(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deal deleted")
}

// UploadProductImage stores a product photo for the deal and returns its URL.
func (h *DealHandler) UploadProductImage(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid deal id")
	}

	data, contentType, err := readUploadedImage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_UPLOAD", err.Error())
	}

	url, err := h.assetUc.UploadProductImage(c.Request().Context(), id, data, contentType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Product image uploaded")
}

// dealFilterFromQuery builds the repository filter from query parameters.
func dealFilterFromQuery(c echo.Context) (repository.DealFilter, error) {
	var filter repository.DealFilter

	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("featured must be a boolean")
		}
		filter.Featured = &featured
	}
	if raw := c.QueryParam("store_id"); raw != "" {
		storeID, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("store_id must be a UUID")
		}
		filter.StoreID = &storeID
	}
	if raw := c.QueryParam("category"); raw != "" {
		category := raw
		filter.Category = &category
	}
	if raw := c.QueryParam("type"); raw != "" {
		dealType := entity.DealType(raw)
		if !dealType.IsValid() {
			return filter, errors.New("unknown deal type")
		}
		filter.Type = &dealType
	}
	filter.Search = c.QueryParam("search")
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return filter, errors.New("limit must be a non-negative integer")
		}
		filter.Limit = limit
	}

	return filter, nil
}
