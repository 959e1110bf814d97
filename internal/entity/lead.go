package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Lead struct {
	ID        string    `json:"id"`
	LastName  string    `json:"last_name"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLead(lastName, company string) (*Lead, error) {
	lead := &Lead{
		ID:        uuid.New().String(),
		LastName:  lastName,
		Company:   company,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.LastName == "" {
		return errors.New("last name is required")
	}
	if l.Company == "" {
		return errors.New("company is required")
	}
	return nil
}
