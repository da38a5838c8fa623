package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"researchhub/internal/usecase"
	"researchhub/pkg/response"
	"researchhub/pkg/utils"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

type setUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active suspended"`
}

type addReviewerRequest struct {
	UserID    string   `json:"user_id" validate:"required"`
	Expertise []string `json:"expertise"`
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	users, total, err := h.adminUseCase.ListUsers(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, users, total, params.Page, params.PageSize)
}

func (h *AdminHandler) SetUserStatus(c echo.Context) error {
	adminID := c.Get("uid").(string)

	var req setUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.adminUseCase.SetUserStatus(c.Request().Context(), adminID, c.Param("id"), req.Status); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *AdminHandler) PromoteAdmin(c echo.Context) error {
	adminID := c.Get("uid").(string)

	if err := h.adminUseCase.PromoteAdmin(c.Request().Context(), adminID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *AdminHandler) AddReviewer(c echo.Context) error {
	adminID := c.Get("uid").(string)

	var req addReviewerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	reviewer, err := h.adminUseCase.AddReviewer(c.Request().Context(), adminID, usecase.AddReviewerInput{
		UserID:    req.UserID,
		Expertise: req.Expertise,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, reviewer)
}

func (h *AdminHandler) DeactivateReviewer(c echo.Context) error {
	adminID := c.Get("uid").(string)

	if err := h.adminUseCase.DeactivateReviewer(c.Request().Context(), adminID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *AdminHandler) ListAuditLogs(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	logs, total, err := h.adminUseCase.ListAuditLogs(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, logs, total, params.Page, params.PageSize)
}
