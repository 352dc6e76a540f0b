package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/edgeup/edgeup-api/internal/entity"
	"github.com/edgeup/edgeup-api/internal/usecase"
)

// MockSubmissionRepositoryHandler
type MockSubmissionRepositoryHandler struct {
	mock.Mock
}

func (m *MockSubmissionRepositoryHandler) Create(ctx context.Context, s *entity.FormSubmission) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubmissionRepositoryHandler) List(ctx context.Context) ([]entity.FormSubmission, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FormSubmission), args.Error(1)
}

func (m *MockSubmissionRepositoryHandler) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSubmissionRepositoryHandler) UpdateStatus(ctx context.Context, id string, status entity.SubmissionStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func newEnquiryHandler(repo entity.SubmissionRepositoryInterface) *EnquiryHandler {
	return NewEnquiryHandler(usecase.NewSubmitEnquiryUseCase(repo, nil, nil, nil))
}

func postEnquiry(h *EnquiryHandler, body string, ip string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/enquiries", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Real-IP", ip)

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{
	"name": "Jane Doe",
	"email": "jane@x.com",
	"institution": "Acme College",
	"message": "Interested",
	"role": "institution"
}`

func TestEnquiryHandlerSuccess(t *testing.T) {
	mockRepo := new(MockSubmissionRepositoryHandler)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	rec := postEnquiry(newEnquiryHandler(mockRepo), validBody, "1.2.3.4")

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp SubmitEnquiryResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)

	mockRepo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnquiryHandlerInvalidJSON(t *testing.T) {
	mockRepo := new(MockSubmissionRepositoryHandler)

	rec := postEnquiry(newEnquiryHandler(mockRepo), `{not json`, "1.2.3.4")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnquiryHandlerMissingFieldNoNetworkCall(t *testing.T) {
	mockRepo := new(MockSubmissionRepositoryHandler)

	body := `{"name":"Jane Doe","email":"jane@x.com","message":"Interested","role":"institution"}`
	rec := postEnquiry(newEnquiryHandler(mockRepo), body, "1.2.3.4")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp SubmitEnquiryResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Please fill out all required fields.", resp.Message)

	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEnquiryHandlerPersistFailureGenericMessage(t *testing.T) {
	mockRepo := new(MockSubmissionRepositoryHandler)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("pq: connection refused"))

	rec := postEnquiry(newEnquiryHandler(mockRepo), validBody, "1.2.3.4")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp SubmitEnquiryResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Something went wrong. Please try again.", resp.Message)
	assert.NotContains(t, rec.Body.String(), "pq:")
}

func TestEnquiryHandlerRateLimit(t *testing.T) {
	mockRepo := new(MockSubmissionRepositoryHandler)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := newEnquiryHandler(mockRepo)

	for i := 0; i < 10; i++ {
		rec := postEnquiry(h, validBody, "9.9.9.9")
		assert.Equal(t, http.StatusCreated, rec.Code, "request %d should pass", i+1)
	}

	rec := postEnquiry(h, validBody, "9.9.9.9")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// Other IPs are unaffected.
	rec = postEnquiry(h, validBody, "8.8.8.8")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestEnquiryHandlerSequentialSubmissionsDistinct(t *testing.T) {
	mockRepo := new(MockSubmissionRepositoryHandler)
	mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	h := newEnquiryHandler(mockRepo)

	ids := map[string]bool{}
	for i := 0; i < 2; i++ {
		rec := postEnquiry(h, validBody, fmt.Sprintf("10.0.0.%d", i))
		var resp SubmitEnquiryResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		ids[resp.ID] = true
	}
	assert.Len(t, ids, 2)
}
