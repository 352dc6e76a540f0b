package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/edgeup/edgeup-api/internal/entity"
	"github.com/edgeup/edgeup-api/internal/infra/queue"
)

// MockSubmissionRepository
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) Create(ctx context.Context, s *entity.FormSubmission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubmissionRepository) List(ctx context.Context) ([]entity.FormSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FormSubmission), args.Error(1)
}

func (m *MockSubmissionRepository) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubmissionRepository) UpdateStatus(ctx context.Context, id string, status entity.SubmissionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockSettingsReader
type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) Get(ctx context.Context) (*entity.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SiteSettings), args.Error(1)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishNotification(ctx context.Context, payload queue.NotificationPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func validInput() SubmitEnquiryInput {
	return SubmitEnquiryInput{
		Name:        "Jane Doe",
		Email:       "jane@x.com",
		Institution: "Acme College",
		Message:     "Interested",
		Role:        "institution",
	}
}

func TestSubmitEnquirySuccess(t *testing.T) {
	ctx := context.Background()
	before := time.Now()

	mockRepo := new(MockSubmissionRepository)
	mockSettings := new(MockSettingsReader)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockSettings.On("Get", ctx).Return(nil, errors.New("no settings row"))
	mockQueue.On("PublishNotification", ctx, mock.Anything).Return(nil)

	uc := NewSubmitEnquiryUseCase(mockRepo, mockSettings, mockQueue, []string{"info@edgeup.in"})

	output, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, "new", output.Status)

	created := mockRepo.Calls[0].Arguments.Get(1).(*entity.FormSubmission)
	assert.Equal(t, entity.StatusNew, created.Status)
	assert.False(t, created.IsRead)
	assert.False(t, created.SubmittedAt.Before(before))
	assert.Equal(t, entity.RoleInstitution, created.Role)

	mockQueue.AssertCalled(t, "PublishNotification", ctx, mock.Anything)
}

func TestSubmitEnquiryMissingFieldSkipsPersistence(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockSubmissionRepository)
	mockQueue := new(MockQueueProducer)

	uc := NewSubmitEnquiryUseCase(mockRepo, nil, mockQueue, nil)

	input := validInput()
	input.Institution = ""

	output, err := uc.Execute(ctx, input)

	assert.Nil(t, output)
	assert.Error(t, err)
	assert.True(t, IsDomainError(err))
	assert.Equal(t, MsgMissingFields, err.Error())

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	mockQueue.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}

func TestSubmitEnquiryPersistFailure(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockSubmissionRepository)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("connection refused"))

	uc := NewSubmitEnquiryUseCase(mockRepo, nil, mockQueue, []string{"info@edgeup.in"})

	output, err := uc.Execute(ctx, validInput())

	assert.Nil(t, output)
	assert.True(t, IsTechnicalError(err))
	// The raw infrastructure error never reaches the caller.
	assert.Equal(t, MsgSubmitFailed, err.Error())

	mockQueue.AssertNotCalled(t, "PublishNotification", mock.Anything, mock.Anything)
}

func TestSubmitEnquiryNotificationFailureDoesNotFailSubmission(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockSubmissionRepository)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishNotification", ctx, mock.Anything).Return(errors.New("broker down"))

	notified := 0
	uc := NewSubmitEnquiryUseCase(mockRepo, nil, mockQueue, []string{"info@edgeup.in"})
	uc.OnNotifyError = func() { notified++ }

	output, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, 1, notified)
}

func TestSubmitEnquiryWithoutQueue(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewSubmitEnquiryUseCase(mockRepo, nil, nil, nil)

	output, err := uc.Execute(ctx, validInput())

	assert.NoError(t, err)
	assert.NotEmpty(t, output.ID)
}

func TestSubmitEnquiryRecipientsFromSettings(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockSubmissionRepository)
	mockSettings := new(MockSettingsReader)
	mockQueue := new(MockQueueProducer)

	mockRepo.On("Create", ctx, mock.Anything).Return(nil)
	mockSettings.On("Get", ctx).Return(&entity.SiteSettings{
		NotifyRecipients: []string{"sales@edgeup.in", "demo@edgeup.in"},
	}, nil)
	mockQueue.On("PublishNotification", ctx, mock.Anything).Return(nil)

	uc := NewSubmitEnquiryUseCase(mockRepo, mockSettings, mockQueue, []string{"info@edgeup.in"})

	_, err := uc.Execute(ctx, validInput())
	assert.NoError(t, err)

	payload := mockQueue.Calls[0].Arguments.Get(1).(queue.NotificationPayload)
	assert.Equal(t, []string{"sales@edgeup.in", "demo@edgeup.in"}, payload.Recipients)
	assert.Equal(t, "Jane Doe", payload.Name)
	assert.Equal(t, "institution", payload.Role)
}

func TestSequentialSubmissionsAreIndependent(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockSubmissionRepository)
	mockRepo.On("Create", ctx, mock.Anything).Return(nil)

	uc := NewSubmitEnquiryUseCase(mockRepo, nil, nil, nil)

	first, err := uc.Execute(ctx, validInput())
	assert.NoError(t, err)

	second, err := uc.Execute(ctx, validInput())
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
