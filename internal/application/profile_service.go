// internal/application/profile_service.go
package application

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

var pictureTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type ProfileUpdate struct {
	FullName string `validate:"required,max=120"`
	Address  string `validate:"required"`
}

type ProfileService struct {
	customers ports.CustomerRepositoryPort
	store     ports.ObjectStorePort
	validate  *validator.Validate
	log       *logger.Logger
}

func NewProfileService(customers ports.CustomerRepositoryPort, store ports.ObjectStorePort, log *logger.Logger) *ProfileService {
	return &ProfileService{customers: customers, store: store, validate: validator.New(), log: log}
}

func (s *ProfileService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	customer, err := s.customers.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return customer, nil
}

func (s *ProfileService) Update(ctx context.Context, current *domain.Customer, upd ProfileUpdate) (*domain.Customer, error) {
	if current == nil {
		return nil, domain.ErrNotAuthenticated
	}
	upd.FullName = strings.TrimSpace(upd.FullName)
	if err := s.validate.Struct(upd); err != nil {
		return nil, domain.NewPublicError(err, validationMessage(err))
	}
	next := *current
	next.FullName = upd.FullName
	next.Address = upd.Address
	if err := s.customers.UpdateCustomer(ctx, &next); err != nil {
		return nil, domain.NewPublicError(err, "failed to update profile")
	}
	return &next, nil
}

// UploadPicture stores the picture and links it to the customer row.
func (s *ProfileService) UploadPicture(ctx context.Context, customerID string, up *Upload) (string, error) {
	if up == nil || up.Body == nil {
		return "", domain.NewPublicError(nil, "no picture selected")
	}
	if !pictureTypes[up.ContentType] {
		return "", domain.NewPublicError(nil, "profile picture must be a JPEG, PNG or WebP image")
	}
	name := fmt.Sprintf("profiles/%s/%s%s", customerID, uuid.NewString(), strings.ToLower(path.Ext(up.Name)))
	ref, err := s.store.Upload(ctx, name, up.ContentType, up.Body)
	if err != nil {
		return "", domain.NewPublicError(err, "failed to upload picture")
	}
	if err := s.customers.SetProfilePicture(ctx, customerID, ref); err != nil {
		return "", domain.NewPublicError(err, "failed to link picture")
	}
	return ref, nil
}
