package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Account struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Industry          string    `json:"industry,omitempty"`
	BillingCity       string    `json:"billing_city,omitempty"`
	NumberOfEmployees int       `json:"number_of_employees,omitempty"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Factory
func NewAccount(name, industry string) (*Account, error) {
	account := &Account{
		ID:        uuid.New().String(),
		Name:      name,
		Industry:  industry,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

func (a *Account) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}
	return nil
}
