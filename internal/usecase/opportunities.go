package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/crm-records/internal/entity"
)

const (
	StageNew           = "New"
	StageQualification = "Qualification"
)

type OpportunityUseCase struct {
	Repo        OpportunityRepositoryInterface
	AccountRepo AccountRepositoryInterface
	Events      RecordEventPublisherInterface
}

func NewOpportunityUseCase(repo OpportunityRepositoryInterface, accountRepo AccountRepositoryInterface, events RecordEventPublisherInterface) *OpportunityUseCase {
	return &OpportunityUseCase{
		Repo:        repo,
		AccountRepo: accountRepo,
		Events:      events,
	}
}

func (uc *OpportunityUseCase) UpdateOpportunityStage(ctx context.Context, id, newStage string) error {
	opp, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	opp.StageName = newStage
	opp.UpdatedAt = time.Now()

	if err := uc.Repo.Update(ctx, opp); err != nil {
		return err
	}

	publishRecordEvent(ctx, uc.Events, "Opportunity", OpUpdate, opp.ID)
	return nil
}

// UpsertOpportunityList forces every element to the Qualification stage with
// a close date three months out and an amount of 50000, then upserts the
// whole batch by identifier.
func (uc *OpportunityUseCase) UpsertOpportunityList(ctx context.Context, opps []*entity.Opportunity) error {
	if errs := ValidateOpportunityBatch(opps); len(errs) > 0 {
		return &DomainError{Code: "VALIDATION_ERROR", Message: joinValidationErrors(errs)}
	}
	if len(opps) == 0 {
		return nil
	}

	now := time.Now()
	closeDate := now.AddDate(0, 3, 0)

	for _, opp := range opps {
		if opp.ID == "" {
			opp.ID = uuid.New().String()
			opp.CreatedAt = now
		}
		opp.StageName = StageQualification
		opp.CloseDate = closeDate
		opp.Amount = 50000
		opp.UpdatedAt = now
	}

	if err := uc.Repo.UpsertBatch(ctx, opps); err != nil {
		return err
	}

	publishRecordEvent(ctx, uc.Events, "Opportunity", OpUpsert, opportunityIDs(opps)...)
	return nil
}

// UpsertOpportunities resolves an account by exact name, creating it when
// absent, then upserts one opportunity per given name linked to that
// account. The link is set whether the account was found or created.
func (uc *OpportunityUseCase) UpsertOpportunities(ctx context.Context, accountName string, oppNames []string) error {
	matches, err := uc.AccountRepo.FindByName(ctx, accountName)
	if err != nil {
		return err
	}

	var account *entity.Account
	if len(matches) > 0 {
		account = matches[0]
	} else {
		account, err = entity.NewAccount(accountName, "")
		if err != nil {
			return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
		}
		if err := uc.AccountRepo.Insert(ctx, account); err != nil {
			return err
		}
		publishRecordEvent(ctx, uc.Events, "Account", OpInsert, account.ID)
	}

	if len(oppNames) == 0 {
		return nil
	}

	closeDate := time.Now().AddDate(0, 3, 0)
	opps := make([]*entity.Opportunity, 0, len(oppNames))

	for _, name := range oppNames {
		opp, err := entity.NewOpportunity(name, account.ID)
		if err != nil {
			return &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
		}
		opp.StageName = StageNew
		opp.CloseDate = closeDate
		opps = append(opps, opp)
	}

	if err := uc.Repo.UpsertBatch(ctx, opps); err != nil {
		return err
	}

	publishRecordEvent(ctx, uc.Events, "Opportunity", OpUpsert, opportunityIDs(opps)...)
	return nil
}

func opportunityIDs(opps []*entity.Opportunity) []string {
	ids := make([]string, 0, len(opps))
	for _, opp := range opps {
		ids = append(ids, opp.ID)
	}
	return ids
}
