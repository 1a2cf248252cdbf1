// internal/application/auth_service_test.go
package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/mahabubulhasibshawon/doorrush/internal/domain"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/internal/ports"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := ports.NewMockIdentityPort(ctrl)
	mockCustomers := ports.NewMockCustomerRepositoryPort(ctrl)
	store := &fakeStore{}
	log := logger.Discard()
	profiles := NewProfileService(mockCustomers, store, log)
	svc := NewAuthService(mockIdentity, mockCustomers, profiles, NewAuthenticator(log), log)

	valid := RegisterRequest{FullName: "Jane Doe", PhoneNumber: "0712345678", Password: "secret1", Address: "Kapsoya"}
	session := &domain.IdentitySession{User: domain.IdentityUser{ID: "u1", Email: "0712345678@doorrush.app"}}

	tests := []struct {
		name      string
		req       RegisterRequest
		mockSetup func()
		wantErr   error
		errMsg    string
	}{
		{
			name: "Successful registration",
			req:  valid,
			mockSetup: func() {
				mockCustomers.EXPECT().FindCustomerByPhone(gomock.Any(), "0712345678").Return(nil, nil)
				mockIdentity.EXPECT().SignUp(gomock.Any(), "0712345678@doorrush.app", "secret1").Return(session, nil)
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "u1").Return(nil, nil)
				mockCustomers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "Profile already created by a trigger",
			req:  valid,
			mockSetup: func() {
				mockCustomers.EXPECT().FindCustomerByPhone(gomock.Any(), "0712345678").Return(nil, nil)
				mockIdentity.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "u1").Return(&domain.Customer{ID: "u1", FullName: "Jane Doe"}, nil)
			},
		},
		{
			name:      "Short password",
			req:       RegisterRequest{FullName: "Jane", PhoneNumber: "0712345678", Password: "abc", Address: "Langas"},
			mockSetup: func() {},
			errMsg:    "password must be at least 6 characters",
		},
		{
			name: "Phone already registered",
			req:  valid,
			mockSetup: func() {
				mockCustomers.EXPECT().FindCustomerByPhone(gomock.Any(), "0712345678").Return(&domain.Customer{ID: "u0"}, nil)
			},
			wantErr: domain.ErrPhoneRegistered,
		},
		{
			name: "Identity reports duplicate",
			req:  valid,
			mockSetup: func() {
				mockCustomers.EXPECT().FindCustomerByPhone(gomock.Any(), gomock.Any()).Return(nil, nil)
				mockIdentity.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrPhoneRegistered)
			},
			wantErr: domain.ErrPhoneRegistered,
		},
		{
			name: "Profile insert fails and identity is rolled back",
			req:  valid,
			mockSetup: func() {
				mockCustomers.EXPECT().FindCustomerByPhone(gomock.Any(), gomock.Any()).Return(nil, nil)
				mockIdentity.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).Return(session, nil)
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "u1").Return(nil, nil)
				mockCustomers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
				mockIdentity.EXPECT().DeleteUser(gomock.Any(), "u1").Return(nil)
			},
			errMsg: "failed to create customer profile",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			customer, err := svc.Register(context.Background(), tt.req)
			if tt.wantErr != nil || tt.errMsg != "" {
				if err == nil {
					t.Fatalf("Register() error = nil, want error")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("Register() error = %v, want %v", err, tt.wantErr)
				}
				if tt.errMsg != "" && domain.UserMessage(err) != tt.errMsg {
					t.Errorf("Register() message = %q, want %q", domain.UserMessage(err), tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() unexpected error: %v", err)
			}
			if customer == nil || customer.ID != "u1" || customer.FullName != "Jane Doe" {
				t.Errorf("Register() customer = %+v", customer)
			}
		})
	}
}

func TestAuthService_RegisterWithPicture(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := ports.NewMockIdentityPort(ctrl)
	mockCustomers := ports.NewMockCustomerRepositoryPort(ctrl)
	store := &fakeStore{}
	log := logger.Discard()
	svc := NewAuthService(mockIdentity, mockCustomers, NewProfileService(mockCustomers, store, log), NewAuthenticator(log), log)

	mockCustomers.EXPECT().FindCustomerByPhone(gomock.Any(), gomock.Any()).Return(nil, nil)
	mockIdentity.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.IdentitySession{User: domain.IdentityUser{ID: "u1"}}, nil)
	mockCustomers.EXPECT().GetCustomer(gomock.Any(), "u1").Return(nil, nil)
	mockCustomers.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(nil)
	mockCustomers.EXPECT().SetProfilePicture(gomock.Any(), "u1", gomock.Any()).Return(nil)

	customer, err := svc.Register(context.Background(), RegisterRequest{
		FullName:    "Jane Doe",
		PhoneNumber: "0712345678",
		Password:    "secret1",
		Address:     "Langas",
		Picture:     &Upload{Name: "me.PNG", ContentType: "image/png", Body: strings.NewReader("png")},
	})
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if len(store.names) != 1 || !strings.HasPrefix(store.names[0], "profiles/u1/") || !strings.HasSuffix(store.names[0], ".png") {
		t.Errorf("uploaded names = %v", store.names)
	}
	if customer.ProfilePicture != "/files/"+store.names[0] {
		t.Errorf("ProfilePicture = %q", customer.ProfilePicture)
	}
}

func TestAuthenticator_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := ports.NewMockIdentityPort(ctrl)
	mockCustomers := ports.NewMockCustomerRepositoryPort(ctrl)
	log := logger.Discard()

	backendCustomer := &domain.Customer{ID: "u1", PhoneNumber: "0700000001"}
	legacyCustomer := &domain.Customer{ID: "u2", PhoneNumber: "0700000002", LegacyPassword: "pass123"}

	tests := []struct {
		name          string
		legacyEnabled bool
		phone         string
		password      string
		mockSetup     func()
		wantKind      StrategyKind
		wantID        string
		wantErr       bool
	}{
		{
			name:          "Backend succeeds first",
			legacyEnabled: true,
			phone:         "0700000001",
			password:      "pass123",
			mockSetup: func() {
				mockIdentity.EXPECT().SignInWithPassword(gomock.Any(), "0700000001@doorrush.app", "pass123").
					Return(&domain.IdentitySession{User: domain.IdentityUser{ID: "u1"}}, nil)
				mockCustomers.EXPECT().GetCustomer(gomock.Any(), "u1").Return(backendCustomer, nil)
			},
			wantKind: StrategyBackend,
			wantID:   "u1",
		},
		{
			name:          "Legacy fallback",
			legacyEnabled: true,
			phone:         "0700000002",
			password:      "pass123",
			mockSetup: func() {
				mockIdentity.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("bad credentials"))
				mockCustomers.EXPECT().FindCustomerByPhone(gomock.Any(), "0700000002").Return(legacyCustomer, nil)
			},
			wantKind: StrategyLegacy,
			wantID:   "u2",
		},
		{
			name:          "Legacy disabled",
			legacyEnabled: false,
			phone:         "0700000002",
			password:      "pass123",
			mockSetup: func() {
				mockIdentity.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("bad credentials"))
			},
			wantErr: true,
		},
		{
			name:          "Empty password",
			legacyEnabled: true,
			phone:         "0700000002",
			password:      "",
			mockSetup:     func() {},
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			a := NewAuthenticator(log,
				NewBackendStrategy(mockIdentity, mockCustomers),
				NewLegacyStrategy(mockCustomers, tt.legacyEnabled, log),
			)
			customer, kind, err := a.Authenticate(context.Background(), tt.phone, tt.password)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidCredentials) {
					t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Authenticate() unexpected error: %v", err)
			}
			if kind != tt.wantKind || customer.ID != tt.wantID {
				t.Errorf("Authenticate() = %s/%s, want %s/%s", kind, customer.ID, tt.wantKind, tt.wantID)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := ports.NewMockIdentityPort(ctrl)
	mockCustomers := ports.NewMockCustomerRepositoryPort(ctrl)
	log := logger.Discard()
	auth := NewAuthenticator(log, NewBackendStrategy(mockIdentity, mockCustomers))
	svc := NewAuthService(mockIdentity, mockCustomers, NewProfileService(mockCustomers, &fakeStore{}, log), auth, log)
	customer := &domain.Customer{ID: "u1", PhoneNumber: "0700000001"}

	mockIdentity.EXPECT().SignInWithPassword(gomock.Any(), gomock.Any(), "old-pass").
		Return(&domain.IdentitySession{User: domain.IdentityUser{ID: "u1"}}, nil).Times(2)
	mockCustomers.EXPECT().GetCustomer(gomock.Any(), "u1").Return(customer, nil).Times(2)
	mockIdentity.EXPECT().UpdatePassword(gomock.Any(), "new-pass").Return(nil)
	mockIdentity.EXPECT().UpdatePassword(gomock.Any(), "other-pass").Return(domain.ErrNoSession)

	if err := svc.ChangePassword(context.Background(), customer, "old-pass", "new-pass"); err != nil {
		t.Errorf("ChangePassword() unexpected error: %v", err)
	}
	err := svc.ChangePassword(context.Background(), customer, "old-pass", "other-pass")
	if got := domain.UserMessage(err); got != "please log in again to change your password" {
		t.Errorf("ChangePassword() message = %q", got)
	}
	if err := svc.ChangePassword(context.Background(), customer, "old-pass", "123"); err == nil {
		t.Errorf("ChangePassword() accepted a short password")
	}
}
