package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"researchhub/pkg/errors"
)

func newMilestoneUseCaseForTest(t *testing.T) (*MilestoneUseCase, *fakeConvRepo) {
	t.Helper()
	convRepo := newFakeConvRepo()
	_, _, err := convRepo.GetOrCreate(context.Background(), "chat-1", "alice")
	require.NoError(t, err)
	return NewMilestoneUseCase(convRepo), convRepo
}

func TestAddMilestone(t *testing.T) {
	uc, convRepo := newMilestoneUseCaseForTest(t)
	ctx := context.Background()

	milestone, err := uc.Add(ctx, "alice", "chat-1", AddMilestoneInput{Title: "Literature review"})
	require.NoError(t, err)

	assert.NotEmpty(t, milestone.ID)
	assert.False(t, milestone.Done)
	assert.Nil(t, milestone.DoneAt)

	conv, err := convRepo.GetByID(ctx, "chat-1")
	require.NoError(t, err)
	require.Len(t, conv.Milestones, 1)
	assert.Equal(t, "Literature review", conv.Milestones[0].Title)
}

func TestAddMilestoneRequiresTitle(t *testing.T) {
	uc, _ := newMilestoneUseCaseForTest(t)

	_, err := uc.Add(context.Background(), "alice", "chat-1", AddMilestoneInput{})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestToggleMilestoneRoundTrip(t *testing.T) {
	uc, convRepo := newMilestoneUseCaseForTest(t)
	ctx := context.Background()

	milestone, err := uc.Add(ctx, "alice", "chat-1", AddMilestoneInput{Title: "Data collection"})
	require.NoError(t, err)

	require.NoError(t, uc.Toggle(ctx, "alice", "chat-1", milestone.ID))
	conv, _ := convRepo.GetByID(ctx, "chat-1")
	assert.True(t, conv.Milestones[0].Done)
	assert.NotNil(t, conv.Milestones[0].DoneAt)

	require.NoError(t, uc.Toggle(ctx, "alice", "chat-1", milestone.ID))
	conv, _ = convRepo.GetByID(ctx, "chat-1")
	assert.False(t, conv.Milestones[0].Done)
	assert.Nil(t, conv.Milestones[0].DoneAt, "untoggling restores the exact initial state")
}

func TestToggleMissingMilestone(t *testing.T) {
	uc, _ := newMilestoneUseCaseForTest(t)

	err := uc.Toggle(context.Background(), "alice", "chat-1", "no-such-id")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteMilestone(t *testing.T) {
	uc, convRepo := newMilestoneUseCaseForTest(t)
	ctx := context.Background()

	keep, err := uc.Add(ctx, "alice", "chat-1", AddMilestoneInput{Title: "Keep"})
	require.NoError(t, err)
	drop, err := uc.Add(ctx, "alice", "chat-1", AddMilestoneInput{Title: "Drop"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, "alice", "chat-1", drop.ID))

	conv, _ := convRepo.GetByID(ctx, "chat-1")
	require.Len(t, conv.Milestones, 1)
	assert.Equal(t, keep.ID, conv.Milestones[0].ID)

	err = uc.Delete(ctx, "alice", "chat-1", drop.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

// Two participants adding milestones at the same moment must both keep
// theirs; the append path never does a read-modify-write of the array.
func TestConcurrentAddsBothSurvive(t *testing.T) {
	uc, convRepo := newMilestoneUseCaseForTest(t)
	ctx := context.Background()
	require.NoError(t, convRepo.AddParticipant(ctx, "chat-1", "bob"))

	var wg sync.WaitGroup
	for _, user := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(user string) {
			defer wg.Done()
			_, err := uc.Add(ctx, user, "chat-1", AddMilestoneInput{Title: "from " + user})
			assert.NoError(t, err)
		}(user)
	}
	wg.Wait()

	conv, err := convRepo.GetByID(ctx, "chat-1")
	require.NoError(t, err)
	assert.Len(t, conv.Milestones, 2)
}

func TestResearchCompleteLifecycle(t *testing.T) {
	uc, convRepo := newMilestoneUseCaseForTest(t)
	ctx := context.Background()

	require.NoError(t, uc.MarkResearchComplete(ctx, "alice", "chat-1"))
	conv, _ := convRepo.GetByID(ctx, "chat-1")
	assert.True(t, conv.ResearchComplete)
	assert.NotNil(t, conv.ResearchCompletedAt)

	require.NoError(t, uc.UnmarkResearchComplete(ctx, "alice", "chat-1"))
	conv, _ = convRepo.GetByID(ctx, "chat-1")
	assert.False(t, conv.ResearchComplete)
	assert.Nil(t, conv.ResearchCompletedAt)
}

func TestMilestoneOpsRequireParticipation(t *testing.T) {
	uc, _ := newMilestoneUseCaseForTest(t)
	ctx := context.Background()

	_, err := uc.Add(ctx, "mallory", "chat-1", AddMilestoneInput{Title: "sneak"})
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = uc.MarkResearchComplete(ctx, "mallory", "chat-1")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
