package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
	"researchhub/pkg/utils"
)

type FundingUseCase struct {
	convRepo repository.ConversationRepository
}

func NewFundingUseCase(convRepo repository.ConversationRepository) *FundingUseCase {
	return &FundingUseCase{
		convRepo: convRepo,
	}
}

type AddFundingInput struct {
	Amount float64
	Source string
	Date   time.Time
}

type AddExpenditureInput struct {
	Amount      float64
	Description string
	Date        time.Time
}

type FundingSnapshot struct {
	Funding      []entity.FundingRecord     `json:"funding"`
	Expenditures []entity.ExpenditureRecord `json:"expenditures"`
	TotalNeeded  float64                    `json:"total_needed"`
}

// FundingSummary carries the derived totals. Balance is computed in integer
// cents, so 10.00 raised minus 4.00 spent is exactly 6.00.
type FundingSummary struct {
	TotalRaised float64 `json:"total_raised"`
	TotalSpent  float64 `json:"total_spent"`
	Balance     float64 `json:"balance"`
	TotalNeeded float64 `json:"total_needed"`
}

func (uc *FundingUseCase) Watch(ctx context.Context, userID, chatID string, fn func(FundingSnapshot)) (func(), error) {
	return uc.convRepo.Watch(ctx, chatID, func(conv *entity.Conversation) {
		if !isParticipant(conv.Participants, userID) {
			return
		}

		funding := conv.Funding
		if funding == nil {
			funding = []entity.FundingRecord{}
		}
		expenditures := conv.Expenditures
		if expenditures == nil {
			expenditures = []entity.ExpenditureRecord{}
		}

		fn(FundingSnapshot{
			Funding:      funding,
			Expenditures: expenditures,
			TotalNeeded:  conv.TotalNeeded,
		})
	})
}

func (uc *FundingUseCase) AddFunding(ctx context.Context, userID, chatID string, input AddFundingInput) (*entity.FundingRecord, error) {
	if input.Amount <= 0 {
		return nil, errors.BadRequest("Funding amount must be positive", nil)
	}

	if err := uc.requireParticipant(ctx, userID, chatID); err != nil {
		return nil, err
	}

	record := entity.FundingRecord{
		ID:      uuid.New().String(),
		Amount:  input.Amount,
		Source:  input.Source,
		Date:    orNow(input.Date),
		AddedBy: userID,
	}

	if err := uc.convRepo.AppendFunding(ctx, chatID, record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (uc *FundingUseCase) AddExpenditure(ctx context.Context, userID, chatID string, input AddExpenditureInput) (*entity.ExpenditureRecord, error) {
	if input.Amount <= 0 {
		return nil, errors.BadRequest("Expenditure amount must be positive", nil)
	}

	if err := uc.requireParticipant(ctx, userID, chatID); err != nil {
		return nil, err
	}

	record := entity.ExpenditureRecord{
		ID:          uuid.New().String(),
		Amount:      input.Amount,
		Description: input.Description,
		Date:        orNow(input.Date),
		AddedBy:     userID,
	}

	if err := uc.convRepo.AppendExpenditure(ctx, chatID, record); err != nil {
		return nil, err
	}

	return &record, nil
}

// UpdateTotalNeeded parses the submitted amount and writes the scalar field.
func (uc *FundingUseCase) UpdateTotalNeeded(ctx context.Context, userID, chatID, amount string) error {
	parsed, err := strconv.ParseFloat(amount, 64)
	if err != nil || parsed < 0 {
		return errors.BadRequest("Total needed must be a non-negative number", err)
	}

	if err := uc.requireParticipant(ctx, userID, chatID); err != nil {
		return err
	}

	return uc.convRepo.SetTotalNeeded(ctx, chatID, parsed)
}

func (uc *FundingUseCase) Summary(ctx context.Context, userID, chatID string) (*FundingSummary, error) {
	conv, err := uc.convRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(conv.Participants, userID) {
		return nil, errors.Forbidden("You are not a participant of this conversation", nil)
	}

	summary := Summarize(conv.Funding, conv.Expenditures)
	summary.TotalNeeded = conv.TotalNeeded
	return summary, nil
}

// Summarize totals the two ledgers in integer cents.
func Summarize(funding []entity.FundingRecord, expenditures []entity.ExpenditureRecord) *FundingSummary {
	var raisedCents, spentCents int64
	for _, f := range funding {
		raisedCents += utils.ToCents(f.Amount)
	}
	for _, e := range expenditures {
		spentCents += utils.ToCents(e.Amount)
	}

	return &FundingSummary{
		TotalRaised: utils.FromCents(raisedCents),
		TotalSpent:  utils.FromCents(spentCents),
		Balance:     utils.FromCents(raisedCents - spentCents),
	}
}

func (uc *FundingUseCase) requireParticipant(ctx context.Context, userID, chatID string) error {
	conv, err := uc.convRepo.GetByID(ctx, chatID)
	if err != nil {
		return err
	}
	if !isParticipant(conv.Participants, userID) {
		return errors.Forbidden("You are not a participant of this conversation", nil)
	}
	return nil
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now()
	}
	return t
}
