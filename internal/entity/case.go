package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Case struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"account_id"`
	Status      string    `json:"status"`
	Origin      string    `json:"origin"`
	Subject     string    `json:"subject,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewCase(accountID, status, origin, subject, description string) (*Case, error) {
	kase := &Case{
		ID:          uuid.New().String(),
		AccountID:   accountID,
		Status:      status,
		Origin:      origin,
		Subject:     subject,
		Description: description,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := kase.Validate(); err != nil {
		return nil, err
	}

	return kase, nil
}

func (c *Case) Validate() error {
	if c.AccountID == "" {
		return errors.New("account id is required")
	}
	if c.Status == "" {
		return errors.New("status is required")
	}
	return nil
}
