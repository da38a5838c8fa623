package handler

import (
	"github.com/labstack/echo/v4"

	"researchhub/internal/usecase"
	"researchhub/pkg/response"
)

type DashboardHandler struct {
	dashboardUseCase *usecase.DashboardUseCase
}

func NewDashboardHandler(dashboardUseCase *usecase.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUseCase: dashboardUseCase,
	}
}

func (h *DashboardHandler) Overview(c echo.Context) error {
	userID := c.Get("uid").(string)

	overview, err := h.dashboardUseCase.Overview(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, overview)
}

func (h *DashboardHandler) Search(c echo.Context) error {
	listings, err := h.dashboardUseCase.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}
