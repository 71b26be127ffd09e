package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"next-form-backend/internal/domain"
	"next-form-backend/internal/usecase"
	"next-form-backend/pkg/apperror"
	"next-form-backend/pkg/metrics"
	"next-form-backend/pkg/validation"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) Insert(ctx context.Context, submission domain.ContactSubmission) (string, error) {
	args := m.Called(ctx, submission)
	return args.String(0), args.Error(1)
}

func validForm() *domain.ContactForm {
	return &domain.ContactForm{
		Name:    "Ada",
		Surname: "Lovelace",
		Email:   "ada@example.com",
		Message: "Hello",
	}
}

func newContactUC(repo domain.ContactRepository) (domain.ContactUsecase, *metrics.Metrics) {
	m := metrics.New()
	return usecase.NewContactUsecase(repo, validation.New(), m, time.Second), m
}

func TestContactSubmit(t *testing.T) {
	t.Run("Should forward the exact fields and return the id", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc, m := newContactUC(repo)
		form := validForm()
		form.Message = "  Hello,\n world  "

		want := domain.ContactSubmission{
			Name:    "Ada",
			Surname: "Lovelace",
			Email:   "ada@example.com",
			Message: "  Hello,\n world  ",
		}
		repo.On("Insert", mock.Anything, want).Return("42", nil).Once()

		receipt, err := uc.Submit(context.Background(), form)
		require.NoError(t, err)
		assert.Equal(t, "42", receipt.ID)
		assert.Equal(t, want, receipt.Submission)
		assert.Equal(t, domain.ContactEcho{Name: "Ada", Surname: "Lovelace", Email: "ada@example.com"}, receipt.Submission.Echo())
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.ResultSuccess)))
		repo.AssertExpectations(t)
	})

	t.Run("Should report unknown when the backend omits the id", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc, _ := newContactUC(repo)
		repo.On("Insert", mock.Anything, mock.Anything).Return("", nil).Once()

		receipt, err := uc.Submit(context.Background(), validForm())
		require.NoError(t, err)
		assert.Equal(t, domain.UnknownRecordID, receipt.ID)
	})

	t.Run("Should bound the insert with a deadline", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc, _ := newContactUC(repo)
		repo.On("Insert", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		}), mock.Anything).Return("1", nil).Once()

		_, err := uc.Submit(context.Background(), validForm())
		require.NoError(t, err)
		repo.AssertExpectations(t)
	})
}

func TestContactSubmitValidation(t *testing.T) {
	cases := map[string]func(f *domain.ContactForm){
		"missing name":    func(f *domain.ContactForm) { f.Name = "" },
		"missing surname": func(f *domain.ContactForm) { f.Surname = "" },
		"blank message":   func(f *domain.ContactForm) { f.Message = "   " },
		"missing email":   func(f *domain.ContactForm) { f.Email = "" },
		"malformed email": func(f *domain.ContactForm) { f.Email = "not-an-email" },
		"truncated email": func(f *domain.ContactForm) { f.Email = "ada@" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			repo := new(MockContactRepo)
			uc, m := newContactUC(repo)
			form := validForm()
			mutate(form)

			_, err := uc.Submit(context.Background(), form)
			var verr *apperror.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Fields)
			repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
			assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.ResultInvalid)))
		})
	}

	t.Run("Should treat a nil form as empty", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc, _ := newContactUC(repo)

		_, err := uc.Submit(context.Background(), nil)
		var verr *apperror.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Fields, 4)
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})
}

func TestContactSubmitStorageFailure(t *testing.T) {
	t.Run("Should keep a StorageError from the gateway", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc, m := newContactUC(repo)
		cause := apperror.Storagef("relation does not exist")
		repo.On("Insert", mock.Anything, mock.Anything).Return("", cause).Once()

		receipt, err := uc.Submit(context.Background(), validForm())
		assert.Nil(t, receipt)
		assert.Same(t, cause, err)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.ResultFailed)))
	})

	t.Run("Should wrap a plain error into a StorageError", func(t *testing.T) {
		repo := new(MockContactRepo)
		uc, _ := newContactUC(repo)
		cause := errors.New("connection reset by peer")
		repo.On("Insert", mock.Anything, mock.Anything).Return("", cause).Once()

		_, err := uc.Submit(context.Background(), validForm())
		var storageErr *apperror.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "connection reset by peer", storageErr.Error())
	})
}

func TestHealthUsecase(t *testing.T) {
	uc := usecase.NewHealthUsecase()

	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.ServiceInfo{Message: "Welcome to Next Form App API", Version: "1.0.0"}, uc.Info())
		assert.Equal(t, domain.HealthStatus{Status: "OK"}, uc.Check(context.Background()))
	}
}
