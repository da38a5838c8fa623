package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"researchhub/internal/usecase"
	"researchhub/pkg/response"
	"researchhub/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type listingRequest struct {
	Title    string   `json:"title" validate:"required"`
	Summary  string   `json:"summary"`
	Field    string   `json:"field"`
	Keywords []string `json:"keywords"`
	Status   string   `json:"status" validate:"omitempty,oneof=public draft closed"`
}

type updateListingRequest struct {
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Field    string   `json:"field"`
	Keywords []string `json:"keywords"`
	Status   string   `json:"status" validate:"omitempty,oneof=public draft closed"`
}

func (h *ListingHandler) Create(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Create(c.Request().Context(), userID, usecase.ListingInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Field:    req.Field,
		Keywords: req.Keywords,
		Status:   req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) GetByID(c echo.Context) error {
	listing, err := h.listingUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) Update(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Update(c.Request().Context(), userID, c.Param("id"), usecase.ListingInput{
		Title:    req.Title,
		Summary:  req.Summary,
		Field:    req.Field,
		Keywords: req.Keywords,
		Status:   req.Status,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) Delete(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.listingUseCase.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *ListingHandler) ListPublic(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListPublic(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

func (h *ListingHandler) ListOwn(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListOwn(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, params.Page, params.PageSize)
}

func (h *ListingHandler) Search(c echo.Context) error {
	listings, err := h.listingUseCase.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}
