package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"researchhub/internal/usecase"
	"researchhub/pkg/response"
)

type MilestoneHandler struct {
	milestoneUseCase *usecase.MilestoneUseCase
}

func NewMilestoneHandler(milestoneUseCase *usecase.MilestoneUseCase) *MilestoneHandler {
	return &MilestoneHandler{
		milestoneUseCase: milestoneUseCase,
	}
}

type addMilestoneRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

func (h *MilestoneHandler) Add(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	var req addMilestoneRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	milestone, err := h.milestoneUseCase.Add(c.Request().Context(), userID, chatID, usecase.AddMilestoneInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, milestone)
}

func (h *MilestoneHandler) Toggle(c echo.Context) error {
	chatID := c.Param("id")
	milestoneID := c.Param("milestoneId")
	userID := c.Get("uid").(string)

	if err := h.milestoneUseCase.Toggle(c.Request().Context(), userID, chatID, milestoneID); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *MilestoneHandler) Delete(c echo.Context) error {
	chatID := c.Param("id")
	milestoneID := c.Param("milestoneId")
	userID := c.Get("uid").(string)

	if err := h.milestoneUseCase.Delete(c.Request().Context(), userID, chatID, milestoneID); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *MilestoneHandler) MarkComplete(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	if err := h.milestoneUseCase.MarkResearchComplete(c.Request().Context(), userID, chatID); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *MilestoneHandler) UnmarkComplete(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	if err := h.milestoneUseCase.UnmarkResearchComplete(c.Request().Context(), userID, chatID); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}
