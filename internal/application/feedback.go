// internal/application/feedback.go
package application

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

var FeedbackCategories = []string{"general", "service", "agent", "app", "payment"}

type FeedbackRequest struct {
	Category string `validate:"required,oneof=general service agent app payment"`
	Rating   int    `validate:"min=1,max=5"`
	Message  string `validate:"required,max=2000"`
}

type FeedbackService struct {
	repo     ports.FeedbackRepositoryPort
	validate *validator.Validate
	log      *logger.Logger
	now      func() time.Time
}

func NewFeedbackService(repo ports.FeedbackRepositoryPort, log *logger.Logger) *FeedbackService {
	return &FeedbackService{repo: repo, validate: validator.New(), log: log, now: time.Now}
}

// Submit stores the feedback.
func (s *FeedbackService) Submit(ctx context.Context, customer *domain.Customer, req FeedbackRequest) (*domain.Feedback, error) {
	fb, err := s.build(customer, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.CreateFeedback(ctx, fb); err != nil {
		s.log.Error("feedback.submit", err, logger.Fields{"customer_id": customer.ID})
		return nil, domain.NewPublicError(err, "failed to send feedback")
	}
	return fb, nil
}

// Record accepts feedback from the older feedback screen, which only ever
// logged what it was given.
func (s *FeedbackService) Record(customer *domain.Customer, req FeedbackRequest) (*domain.Feedback, error) {
	fb, err := s.build(customer, req)
	if err != nil {
		return nil, err
	}
	s.log.Info("feedback.record", logger.Fields{"customer_id": fb.CustomerID, "category": fb.Category, "rating": fb.Rating})
	return fb, nil
}

func (s *FeedbackService) build(customer *domain.Customer, req FeedbackRequest) (*domain.Feedback, error) {
	if customer == nil {
		return nil, domain.ErrNotAuthenticated
	}
	req.Message = strings.TrimSpace(req.Message)
	req.Category = strings.ToLower(strings.TrimSpace(req.Category))
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.NewPublicError(err, validationMessage(err))
	}
	return &domain.Feedback{
		ID:         uuid.NewString(),
		CustomerID: customer.ID,
		Category:   req.Category,
		Rating:     req.Rating,
		Message:    req.Message,
		CreatedAt:  s.now().UTC(),
	}, nil
}
