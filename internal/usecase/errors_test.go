package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTechnicalErrorKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewTechnicalError("BROKER_PUBLISH", "publishing record event", cause)

	assert.True(t, IsTechnicalError(err))
	assert.False(t, IsDomainError(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "publishing record event: dial tcp: connection refused", err.Error())
}

func TestTechnicalErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("notifying: %w", NewTechnicalError("SMTP_SEND", "sending SMTP notification", nil))

	assert.True(t, IsTechnicalError(err))
}
