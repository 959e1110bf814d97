package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Opportunity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	AccountID string    `json:"account_id,omitempty"`
	StageName string    `json:"stage_name"`
	CloseDate time.Time `json:"close_date"`
	Amount    float64   `json:"amount,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewOpportunity(name, accountID string) (*Opportunity, error) {
	opp := &Opportunity{
		ID:        uuid.New().String(),
		Name:      name,
		AccountID: accountID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := opp.Validate(); err != nil {
		return nil, err
	}

	return opp, nil
}

func (o *Opportunity) Validate() error {
	if o.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
