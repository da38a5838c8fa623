package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"researchhub/internal/domain/entity"
	"researchhub/internal/domain/repository"
	"researchhub/pkg/errors"
)

type MilestoneUseCase struct {
	convRepo repository.ConversationRepository
}

func NewMilestoneUseCase(convRepo repository.ConversationRepository) *MilestoneUseCase {
	return &MilestoneUseCase{
		convRepo: convRepo,
	}
}

type AddMilestoneInput struct {
	Title       string
	Description string
}

// MilestoneSnapshot is the live-subscription payload: milestones plus the
// completion flag pair, each defaulted when absent.
type MilestoneSnapshot struct {
	Milestones          []entity.Milestone `json:"milestones"`
	ResearchComplete    bool               `json:"research_complete"`
	ResearchCompletedAt *time.Time         `json:"research_completed_at"`
}

func (uc *MilestoneUseCase) Watch(ctx context.Context, userID, chatID string, fn func(MilestoneSnapshot)) (func(), error) {
	return uc.convRepo.Watch(ctx, chatID, func(conv *entity.Conversation) {
		if !isParticipant(conv.Participants, userID) {
			return
		}

		milestones := conv.Milestones
		if milestones == nil {
			milestones = []entity.Milestone{}
		}

		fn(MilestoneSnapshot{
			Milestones:          milestones,
			ResearchComplete:    conv.ResearchComplete,
			ResearchCompletedAt: conv.ResearchCompletedAt,
		})
	})
}

// Add appends a new milestone. The append is atomic, so two participants
// adding at the same moment both keep their milestone.
func (uc *MilestoneUseCase) Add(ctx context.Context, userID, chatID string, input AddMilestoneInput) (*entity.Milestone, error) {
	if input.Title == "" {
		return nil, errors.BadRequest("Milestone title is required", nil)
	}

	if err := uc.requireParticipant(ctx, userID, chatID); err != nil {
		return nil, err
	}

	milestone := entity.Milestone{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Description: input.Description,
		Done:        false,
		CreatedAt:   time.Now(),
		DoneAt:      nil,
	}

	if err := uc.convRepo.AppendMilestone(ctx, chatID, milestone); err != nil {
		return nil, err
	}

	return &milestone, nil
}

// Toggle flips a milestone's done flag against the live array, never a
// caller-supplied snapshot. Toggling twice restores done=false, doneAt=nil
// exactly.
func (uc *MilestoneUseCase) Toggle(ctx context.Context, userID, chatID, milestoneID string) error {
	if err := uc.requireParticipant(ctx, userID, chatID); err != nil {
		return err
	}

	return uc.convRepo.UpdateMilestones(ctx, chatID, func(milestones []entity.Milestone) ([]entity.Milestone, error) {
		for i := range milestones {
			if milestones[i].ID == milestoneID {
				if milestones[i].Done {
					milestones[i].Done = false
					milestones[i].DoneAt = nil
				} else {
					now := time.Now()
					milestones[i].Done = true
					milestones[i].DoneAt = &now
				}
				return milestones, nil
			}
		}
		return nil, errors.NotFound("Milestone", nil)
	})
}

func (uc *MilestoneUseCase) Delete(ctx context.Context, userID, chatID, milestoneID string) error {
	if err := uc.requireParticipant(ctx, userID, chatID); err != nil {
		return err
	}

	return uc.convRepo.UpdateMilestones(ctx, chatID, func(milestones []entity.Milestone) ([]entity.Milestone, error) {
		filtered := milestones[:0:0]
		for _, m := range milestones {
			if m.ID != milestoneID {
				filtered = append(filtered, m)
			}
		}
		if len(filtered) == len(milestones) {
			return nil, errors.NotFound("Milestone", nil)
		}
		return filtered, nil
	})
}

// MarkResearchComplete sets the completion pair. These fields are written
// independently of the milestones array.
func (uc *MilestoneUseCase) MarkResearchComplete(ctx context.Context, userID, chatID string) error {
	if err := uc.requireParticipant(ctx, userID, chatID); err != nil {
		return err
	}

	now := time.Now()
	return uc.convRepo.SetResearchComplete(ctx, chatID, true, &now)
}

func (uc *MilestoneUseCase) UnmarkResearchComplete(ctx context.Context, userID, chatID string) error {
	if err := uc.requireParticipant(ctx, userID, chatID); err != nil {
		return err
	}

	return uc.convRepo.SetResearchComplete(ctx, chatID, false, nil)
}

func (uc *MilestoneUseCase) requireParticipant(ctx context.Context, userID, chatID string) error {
	conv, err := uc.convRepo.GetByID(ctx, chatID)
	if err != nil {
		return err
	}
	if !isParticipant(conv.Participants, userID) {
		return errors.Forbidden("You are not a participant of this conversation", nil)
	}
	return nil
}
