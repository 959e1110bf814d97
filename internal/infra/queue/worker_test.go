package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/xavierca1/crm-records/internal/usecase"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendRecordDigest(object, op string, count int) error {
	args := m.Called(object, op, count)
	return args.Error(0)
}

func newTestWorker(notifier Notifier) *Worker {
	return NewWorker(nil, notifier, zap.NewNop().Sugar())
}

func TestProcessEventNotifiesOnLeadInsert(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("SendRecordDigest", "Lead", "insert", 2).Return(nil)

	w := newTestWorker(notifier)
	err := w.ProcessEvent(context.Background(), usecase.RecordEvent{
		Object:     "Lead",
		Op:         "insert",
		RecordIDs:  []string{"a", "b"},
		OccurredAt: time.Now(),
	})

	assert.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestProcessEventIgnoresOtherObjects(t *testing.T) {
	notifier := new(MockNotifier)

	w := newTestWorker(notifier)
	err := w.ProcessEvent(context.Background(), usecase.RecordEvent{
		Object:    "Account",
		Op:        "insert",
		RecordIDs: []string{"a"},
	})

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "SendRecordDigest", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessEventIgnoresLeadDeletes(t *testing.T) {
	notifier := new(MockNotifier)

	w := newTestWorker(notifier)
	err := w.ProcessEvent(context.Background(), usecase.RecordEvent{
		Object:    "Lead",
		Op:        "delete",
		RecordIDs: []string{"a"},
	})

	assert.NoError(t, err)
	notifier.AssertNotCalled(t, "SendRecordDigest", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessEventWithoutNotifier(t *testing.T) {
	w := newTestWorker(nil)

	err := w.ProcessEvent(context.Background(), usecase.RecordEvent{
		Object:    "Lead",
		Op:        "insert",
		RecordIDs: []string{"a"},
	})

	assert.NoError(t, err)
}

func TestProcessEventKeepsNotifierFailureClassification(t *testing.T) {
	notifier := new(MockNotifier)
	notifier.On("SendRecordDigest", "Lead", "insert", 1).
		Return(usecase.NewTechnicalError("SMTP_SEND", "sending SMTP notification", errors.New("dial tcp: refused")))

	w := newTestWorker(notifier)
	err := w.ProcessEvent(context.Background(), usecase.RecordEvent{
		Object:    "Lead",
		Op:        "insert",
		RecordIDs: []string{"a"},
	})

	assert.Error(t, err)
	assert.True(t, usecase.IsTechnicalError(err))
	notifier.AssertExpectations(t)
}
