package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"dealhub/internal/delivery/http/response"
	"dealhub/internal/domain/entity"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store catalog handlers.
type StoreHandler struct {
	uc      usecase.StoreUsecase
	assetUc usecase.AssetUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, assetUc usecase.AssetUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, assetUc: assetUc, logger: logger}
}

type storeRequest struct {
	Name        string `json:"name" validate:"required"`
	Logo        string `json:"logo"`
	Category    string `json:"category"`
	CategoryID  string `json:"category_id"`
	URL         string `json:"url"`
	StoreType   string `json:"store_type" validate:"required"`
	Featured    bool   `json:"featured"`
	Country     string `json:"country"`
	Description string `json:"description"`
}

func (r *storeRequest) toInput() (*usecase.StoreInput, error) {
	input := &usecase.StoreInput{
		Name:        r.Name,
		Logo:        r.Logo,
		Category:    r.Category,
		URL:         r.URL,
		StoreType:   entity.StoreType(r.StoreType),
		Featured:    r.Featured,
		Country:     r.Country,
		Description: r.Description,
	}
	if r.CategoryID != "" {
		categoryID, err := uuid.Parse(r.CategoryID)
		if err != nil {
			return nil, err
		}
		input.CategoryID = &categoryID
	}

	return input, nil
}

// ListStores handles the public store listing with optional filters.
func (h *StoreHandler) ListStores(c echo.Context) error {
	filter, err := storeFilterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	stores, err := h.uc.ListStores(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "")
}

// GetStore returns a single store by ID.
func (h *StoreHandler) GetStore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store id")
	}

	store, err := h.uc.GetStore(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "")
}

// CreateStore handles the admin store creation request.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	store, err := h.uc.CreateStore(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created")
}

// UpdateStore handles the admin store update request.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store id")
	}

	var req storeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input, err := req.toInput()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid category id")
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store updated")
}

// DeleteStore handles the admin store deletion request. A store with
// remaining deals is refused.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store id")
	}

	if err := h.uc.DeleteStore(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted")
}

// UploadLogo stores a logo image for the store and returns its URL.
func (h *StoreHandler) UploadLogo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store id")
	}

	data, contentType, err := readUploadedImage(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_UPLOAD", err.Error())
	}

	url, err := h.assetUc.UploadStoreLogo(c.Request().Context(), id, data, contentType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"url": url}, "Logo uploaded")
}

// storeFilterFromQuery builds the repository filter from query parameters.
func storeFilterFromQuery(c echo.Context) (repository.StoreFilter, error) {
	var filter repository.StoreFilter

	if raw := c.QueryParam("featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("featured must be a boolean")
		}
		filter.Featured = &featured
	}
	if raw := c.QueryParam("category"); raw != "" {
		category := raw
		filter.Category = &category
	}
	if raw := c.QueryParam("store_type"); raw != "" {
		storeType := entity.StoreType(raw)
		if !storeType.IsValid() {
			return filter, errors.New("unknown store type")
		}
		filter.StoreType = &storeType
	}
	if raw := c.QueryParam("country"); raw != "" {
		country := raw
		filter.Country = &country
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
