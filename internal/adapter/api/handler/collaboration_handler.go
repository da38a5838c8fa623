package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"researchhub/internal/usecase"
	"researchhub/pkg/response"
	"researchhub/pkg/utils"
)

type CollaborationHandler struct {
	collaborationUseCase *usecase.CollaborationUseCase
}

func NewCollaborationHandler(collaborationUseCase *usecase.CollaborationUseCase) *CollaborationHandler {
	return &CollaborationHandler{
		collaborationUseCase: collaborationUseCase,
	}
}

type createCollaborationRequestRequest struct {
	ListingID string `json:"listing_id" validate:"required"`
	Message   string `json:"message"`
}

func (h *CollaborationHandler) CreateRequest(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createCollaborationRequestRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.collaborationUseCase.CreateRequest(c.Request().Context(), userID, usecase.CreateCollaborationRequestInput{
		ListingID: req.ListingID,
		Message:   req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, request)
}

func (h *CollaborationHandler) Accept(c echo.Context) error {
	userID := c.Get("uid").(string)

	collaboration, err := h.collaborationUseCase.Accept(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, collaboration)
}

func (h *CollaborationHandler) Reject(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.collaborationUseCase.Reject(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *CollaborationHandler) ListIncoming(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	requests, total, err := h.collaborationUseCase.ListIncoming(c.Request().Context(), userID, c.QueryParam("status"), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, params.Page, params.PageSize)
}

func (h *CollaborationHandler) ListOutgoing(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	requests, total, err := h.collaborationUseCase.ListOutgoing(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, requests, total, params.Page, params.PageSize)
}

func (h *CollaborationHandler) ListCollaborations(c echo.Context) error {
	userID := c.Get("uid").(string)
	params := utils.GetPaginationParams(c)

	collaborations, total, err := h.collaborationUseCase.ListCollaborations(c.Request().Context(), userID, params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, collaborations, total, params.Page, params.PageSize)
}
