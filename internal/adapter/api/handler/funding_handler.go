package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"researchhub/internal/usecase"
	"researchhub/pkg/response"
)

type FundingHandler struct {
	fundingUseCase *usecase.FundingUseCase
}

func NewFundingHandler(fundingUseCase *usecase.FundingUseCase) *FundingHandler {
	return &FundingHandler{
		fundingUseCase: fundingUseCase,
	}
}

type addFundingRequest struct {
	Amount float64   `json:"amount" validate:"required,gt=0"`
	Source string    `json:"source" validate:"required"`
	Date   time.Time `json:"date"`
}

type addExpenditureRequest struct {
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Description string    `json:"description" validate:"required"`
	Date        time.Time `json:"date"`
}

type updateTotalNeededRequest struct {
	Amount string `json:"amount" validate:"required"`
}

func (h *FundingHandler) AddFunding(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	var req addFundingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	record, err := h.fundingUseCase.AddFunding(c.Request().Context(), userID, chatID, usecase.AddFundingInput{
		Amount: req.Amount,
		Source: req.Source,
		Date:   req.Date,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, record)
}

func (h *FundingHandler) AddExpenditure(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	var req addExpenditureRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	record, err := h.fundingUseCase.AddExpenditure(c.Request().Context(), userID, chatID, usecase.AddExpenditureInput{
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, record)
}

// UpdateTotalNeeded takes the amount as a string, matching the form input it
// comes from, and rejects anything that does not parse.
func (h *FundingHandler) UpdateTotalNeeded(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	var req updateTotalNeededRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.fundingUseCase.UpdateTotalNeeded(c.Request().Context(), userID, chatID, req.Amount); err != nil {
		return response.Error(c, err)
	}

	return c.NoContent(http.StatusOK)
}

func (h *FundingHandler) Summary(c echo.Context) error {
	chatID := c.Param("id")
	userID := c.Get("uid").(string)

	summary, err := h.fundingUseCase.Summary(c.Request().Context(), userID, chatID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
