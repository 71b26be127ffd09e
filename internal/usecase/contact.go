package usecase

import (
	"context"
	"errors"
	"time"

	"next-form-backend/internal/domain"
	"next-form-backend/pkg/apperror"
	"next-form-backend/pkg/logger"
	"next-form-backend/pkg/metrics"
	"next-form-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type contactUsecase struct {
	repo     domain.ContactRepository
	validate *validator.Validate
	metrics  *metrics.Metrics
	timeout  time.Duration
}

// NewContactUsecase creates a new contact usecase. A zero timeout leaves the
// insert bounded only by the caller's context.
func NewContactUsecase(repo domain.ContactRepository, validate *validator.Validate, m *metrics.Metrics, timeout time.Duration) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		validate: validate,
		metrics:  m,
		timeout:  timeout,
	}
}

// Submit validates the form, then stores it exactly once.
func (uc *contactUsecase) Submit(ctx context.Context, form *domain.ContactForm) (*domain.ContactReceipt, error) {
	if form == nil {
		form = &domain.ContactForm{}
	}
	if err := uc.validate.Struct(form); err != nil {
		uc.metrics.ObserveSubmission(metrics.ResultInvalid)
		return nil, apperror.NewValidationError(validation.FormatValidationErrors(err)...)
	}

	submission := domain.ContactSubmission{
		Name:    form.Name,
		Surname: form.Surname,
		Email:   form.Email,
		Message: form.Message,
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	start := time.Now()
	id, err := uc.repo.Insert(ctx, submission)
	uc.metrics.ObserveInsert(time.Since(start))
	if err != nil {
		uc.metrics.ObserveSubmission(metrics.ResultFailed)
		logger.Log.Error("Error saving contact form", "error", err)
		var storageErr *apperror.StorageError
		if !errors.As(err, &storageErr) {
			err = apperror.Storage(err)
		}
		return nil, err
	}
	if id == "" {
		id = domain.UnknownRecordID
	}

	uc.metrics.ObserveSubmission(metrics.ResultSuccess)
	logger.Log.Info("Received contact form",
		"name", submission.Name,
		"surname", submission.Surname,
		"email", submission.Email,
		"record_id", id,
	)

	return &domain.ContactReceipt{ID: id, Submission: submission}, nil
}
