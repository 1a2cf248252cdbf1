// internal/application/auth_service.go
package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

type Upload struct {
	Name        string
	ContentType string
	Body        io.Reader
}

type RegisterRequest struct {
	FullName    string `validate:"required,max=120"`
	PhoneNumber string `validate:"required,numeric,min=10,max=13"`
	Password    string `validate:"required,min=6"`
	Address     string `validate:"required"`
	Picture     *Upload
}

type AuthService struct {
	identity  ports.IdentityPort
	customers ports.CustomerRepositoryPort
	profiles  *ProfileService
	auth      *Authenticator
	validate  *validator.Validate
	log       *logger.Logger
}

func NewAuthService(identity ports.IdentityPort, customers ports.CustomerRepositoryPort, profiles *ProfileService, auth *Authenticator, log *logger.Logger) *AuthService {
	return &AuthService{
		identity:  identity,
		customers: customers,
		profiles:  profiles,
		auth:      auth,
		validate:  validator.New(),
		log:       log,
	}
}

func (s *AuthService) Login(ctx context.Context, phone, password string) (*domain.Customer, StrategyKind, error) {
	return s.auth.Authenticate(ctx, phone, password)
}

// Register creates the identity, makes sure a customer row exists for it and
// links the optional profile picture. If the customer row cannot be created
// the identity is deleted again on a best-effort basis.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*domain.Customer, error) {
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := s.validate.Struct(req); err != nil {
		return nil, domain.NewPublicError(err, validationMessage(err))
	}

	existing, err := s.customers.FindCustomerByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("check phone: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrPhoneRegistered
	}

	session, err := s.identity.SignUp(ctx, PhoneToEmail(req.PhoneNumber), req.Password)
	if err != nil {
		return nil, err
	}
	userID := session.User.ID

	customer, err := s.customers.GetCustomer(ctx, userID)
	if err != nil {
		s.rollback(ctx, userID, err)
		return nil, domain.NewPublicError(err, "failed to create customer profile")
	}
	if customer == nil {
		customer = &domain.Customer{
			ID:          userID,
			FullName:    req.FullName,
			PhoneNumber: req.PhoneNumber,
			Address:     req.Address,
		}
		if err := s.customers.CreateCustomer(ctx, customer); err != nil {
			s.rollback(ctx, userID, err)
			return nil, domain.NewPublicError(err, "failed to create customer profile")
		}
	}

	if req.Picture != nil {
		ref, err := s.profiles.UploadPicture(ctx, userID, req.Picture)
		if err != nil {
			s.log.Error("auth.register.picture", err, logger.Fields{"customer_id": userID})
		} else {
			customer.ProfilePicture = ref
		}
	}
	return customer, nil
}

func (s *AuthService) rollback(ctx context.Context, userID string, cause error) {
	s.log.Error("auth.register.profile", cause, logger.Fields{"user_id": userID})
	if err := s.identity.DeleteUser(ctx, userID); err != nil {
		s.log.Error("auth.register.rollback", err, logger.Fields{"user_id": userID})
	}
}

// ChangePassword re-checks the current password before updating the
// identity credential. Customers signed in through the legacy path have no
// identity session and must sign in again first.
func (s *AuthService) ChangePassword(ctx context.Context, customer *domain.Customer, current, next string) error {
	if customer == nil {
		return domain.ErrNotAuthenticated
	}
	if len(next) < 6 {
		return domain.NewPublicError(nil, "new password must be at least 6 characters")
	}
	if _, _, err := s.auth.Authenticate(ctx, customer.PhoneNumber, current); err != nil {
		return domain.NewPublicError(err, "current password is incorrect")
	}
	if err := s.identity.UpdatePassword(ctx, next); err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return domain.NewPublicError(err, "please log in again to change your password")
		}
		return err
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid input"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldLabel(fe.Field()))
	case "numeric":
		return fmt.Sprintf("%s must contain digits only", fieldLabel(fe.Field()))
	case "min":
		return fmt.Sprintf("%s must be at least %s%s", fieldLabel(fe.Field()), fe.Param(), unit(fe))
	case "max":
		return fmt.Sprintf("%s must be at most %s%s", fieldLabel(fe.Field()), fe.Param(), unit(fe))
	default:
		return fmt.Sprintf("%s is invalid", fieldLabel(fe.Field()))
	}
}

func unit(fe validator.FieldError) string {
	if fe.Kind() == reflect.String {
		return " characters"
	}
	return ""
}

func fieldLabel(field string) string {
	switch field {
	case "FullName":
		return "full name"
	case "PhoneNumber":
		return "phone number"
	case "Password":
		return "password"
	case "Address":
		return "address"
	default:
		return strings.ToLower(field)
	}
}
