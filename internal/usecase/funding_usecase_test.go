package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"researchhub/internal/domain/entity"
	"researchhub/pkg/errors"
)

func newFundingUseCaseForTest(t *testing.T) (*FundingUseCase, *fakeConvRepo) {
	t.Helper()
	convRepo := newFakeConvRepo()
	_, _, err := convRepo.GetOrCreate(context.Background(), "chat-1", "alice")
	require.NoError(t, err)
	return NewFundingUseCase(convRepo), convRepo
}

func TestAddFundingAndExpenditure(t *testing.T) {
	uc, convRepo := newFundingUseCaseForTest(t)
	ctx := context.Background()

	funding, err := uc.AddFunding(ctx, "alice", "chat-1", AddFundingInput{Amount: 2500, Source: "NSF grant"})
	require.NoError(t, err)
	assert.NotEmpty(t, funding.ID)
	assert.Equal(t, "alice", funding.AddedBy)
	assert.False(t, funding.Date.IsZero(), "missing date defaults to now")

	expenditure, err := uc.AddExpenditure(ctx, "alice", "chat-1", AddExpenditureInput{Amount: 300, Description: "Sequencing kits"})
	require.NoError(t, err)
	assert.NotEmpty(t, expenditure.ID)

	conv, _ := convRepo.GetByID(ctx, "chat-1")
	assert.Len(t, conv.Funding, 1)
	assert.Len(t, conv.Expenditures, 1)
}

func TestAddFundingRejectsNonPositiveAmounts(t *testing.T) {
	uc, _ := newFundingUseCaseForTest(t)
	ctx := context.Background()

	_, err := uc.AddFunding(ctx, "alice", "chat-1", AddFundingInput{Amount: 0})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.AddExpenditure(ctx, "alice", "chat-1", AddExpenditureInput{Amount: -5})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestUpdateTotalNeeded(t *testing.T) {
	uc, convRepo := newFundingUseCaseForTest(t)
	ctx := context.Background()

	require.NoError(t, uc.UpdateTotalNeeded(ctx, "alice", "chat-1", "15000.50"))
	conv, _ := convRepo.GetByID(ctx, "chat-1")
	assert.Equal(t, 15000.50, conv.TotalNeeded)

	assert.True(t, errors.Is(uc.UpdateTotalNeeded(ctx, "alice", "chat-1", "lots"), "BAD_REQUEST"))
	assert.True(t, errors.Is(uc.UpdateTotalNeeded(ctx, "alice", "chat-1", "-10"), "BAD_REQUEST"))
}

// Balances are computed in integer cents, so 10 minus 4 is exactly 6 with no
// float residue.
func TestSummarizeIsExact(t *testing.T) {
	summary := Summarize(
		[]entity.FundingRecord{{Amount: 10}},
		[]entity.ExpenditureRecord{{Amount: 4}},
	)

	assert.Equal(t, 10.0, summary.TotalRaised)
	assert.Equal(t, 4.0, summary.TotalSpent)
	assert.Equal(t, 6.0, summary.Balance)

	summary = Summarize(
		[]entity.FundingRecord{{Amount: 0.1}, {Amount: 0.2}},
		[]entity.ExpenditureRecord{{Amount: 0.3}},
	)
	assert.Equal(t, 0.0, summary.Balance)
}

func TestFundingSummary(t *testing.T) {
	uc, _ := newFundingUseCaseForTest(t)
	ctx := context.Background()

	_, err := uc.AddFunding(ctx, "alice", "chat-1", AddFundingInput{Amount: 1000, Source: "University"})
	require.NoError(t, err)
	_, err = uc.AddExpenditure(ctx, "alice", "chat-1", AddExpenditureInput{Amount: 250.25, Description: "Reagents"})
	require.NoError(t, err)
	require.NoError(t, uc.UpdateTotalNeeded(ctx, "alice", "chat-1", "5000"))

	summary, err := uc.Summary(ctx, "alice", "chat-1")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, summary.TotalRaised)
	assert.Equal(t, 250.25, summary.TotalSpent)
	assert.Equal(t, 749.75, summary.Balance)
	assert.Equal(t, 5000.0, summary.TotalNeeded)

	_, err = uc.Summary(ctx, "mallory", "chat-1")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
