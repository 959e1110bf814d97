package usecase

import (
	"context"

	"github.com/xavierca1/crm-records/internal/entity"
)

type LeadUseCase struct {
	Repo   LeadRepositoryInterface
	Events RecordEventPublisherInterface
}

func NewLeadUseCase(repo LeadRepositoryInterface, events RecordEventPublisherInterface) *LeadUseCase {
	return &LeadUseCase{
		Repo:   repo,
		Events: events,
	}
}

// FindLeadsByLastNames returns the stored leads matching any of the given
// last names, oldest first.
func (uc *LeadUseCase) FindLeadsByLastNames(ctx context.Context, lastNames []string) ([]*entity.Lead, error) {
	if len(lastNames) == 0 {
		return nil, nil
	}
	return uc.Repo.FindByLastNames(ctx, lastNames)
}

// InsertAndDeleteLeads creates one lead per last name with Company
// "Test Lead", inserts the batch and immediately deletes it again.
func (uc *LeadUseCase) InsertAndDeleteLeads(ctx context.Context, lastNames []string) error {
	if len(lastNames) == 0 {
		return nil
	}

	leads := make([]*entity.Lead, 0, len(lastNames))
	for _, lastName := range lastNames {
		lead, err := entity.NewLead(lastName, "Test Lead")
		if err != nil {
			return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
		}
		leads = append(leads, lead)
	}

	if err := uc.Repo.InsertBatch(ctx, leads); err != nil {
		return err
	}

	ids := make([]string, 0, len(leads))
	for _, lead := range leads {
		ids = append(ids, lead.ID)
	}
	publishRecordEvent(ctx, uc.Events, "Lead", OpInsert, ids...)

	if err := uc.Repo.DeleteBatch(ctx, ids); err != nil {
		return err
	}

	publishRecordEvent(ctx, uc.Events, "Lead", OpDelete, ids...)
	return nil
}
