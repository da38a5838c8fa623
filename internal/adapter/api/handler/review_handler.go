package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"researchhub/internal/usecase"
	"researchhub/pkg/response"
	"researchhub/pkg/utils"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequestRequest struct {
	ListingID  string `json:"listing_id" validate:"required"`
	ReviewerID string `json:"reviewer_id" validate:"required"`
}

type completeReviewRequest struct {
	Feedback string `json:"feedback" validate:"required"`
}

func (h *ReviewHandler) CreateRequest(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createReviewRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.reviewUseCase.CreateRequest(c.Request().Context(), userID, usecase.CreateReviewRequestInput{
		ListingID:  req.ListingID,
		ReviewerID: req.ReviewerID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *ReviewHandler) Accept(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.reviewUseCase.Accept(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *ReviewHandler) Decline(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.reviewUseCase.Decline(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *ReviewHandler) Complete(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req completeReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.reviewUseCase.Complete(c.Request().Context(), userID, c.Param("id"), req.Feedback); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *ReviewHandler) ListForReviewer(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	requests, total, err := h.reviewUseCase.ListForReviewer(c.Request().Context(), userID, c.QueryParam("status"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, params.Page, params.PageSize)
}

func (h *ReviewHandler) ListForResearcher(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	requests, total, err := h.reviewUseCase.ListForResearcher(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, params.Page, params.PageSize)
}

func (h *ReviewHandler) ListReviewers(c echo.Context) error {
	reviewers, err := h.reviewUseCase.ListReviewers(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviewers)
}
