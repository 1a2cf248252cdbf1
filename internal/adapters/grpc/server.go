// internal/adapters/grpc/server.go
package grpc

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mahabubulhasibshawon/doorrush/internal/identity"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/pkg/auth"
)

type Server struct {
	identity *identity.Service
	log      *logger.Logger
}

func NewServer(svc *identity.Service, log *logger.Logger) *Server {
	return &Server{identity: svc, log: log}
}

func (s *Server) SignUp(ctx context.Context, req *CredentialsRequest) (*SessionReply, error) {
	session, err := s.identity.SignUp(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus("SignUp", err)
	}
	return sessionReply(session), nil
}

func (s *Server) SignInWithPassword(ctx context.Context, req *CredentialsRequest) (*SessionReply, error) {
	session, err := s.identity.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.toStatus("SignInWithPassword", err)
	}
	return sessionReply(session), nil
}

func (s *Server) GetUser(ctx context.Context, req *UserRequest) (*UserReply, error) {
	if err := requireSelf(ctx, req.UserID); err != nil {
		return nil, err
	}
	user, err := s.identity.GetUser(ctx, req.UserID)
	if err != nil {
		return nil, s.toStatus("GetUser", err)
	}
	return &UserReply{ID: user.ID, Email: user.Email}, nil
}

func (s *Server) RefreshSession(ctx context.Context, req *RefreshRequest) (*SessionReply, error) {
	session, err := s.identity.RefreshSession(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus("RefreshSession", err)
	}
	return sessionReply(session), nil
}

func (s *Server) UpdatePassword(ctx context.Context, req *UpdatePasswordRequest) (*emptypb.Empty, error) {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.identity.UpdatePassword(ctx, claims.UserID, req.Password); err != nil {
		return nil, s.toStatus("UpdatePassword", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) SignOut(ctx context.Context, req *RefreshRequest) (*emptypb.Empty, error) {
	if err := s.identity.SignOut(ctx, req.RefreshToken); err != nil {
		return nil, s.toStatus("SignOut", err)
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) DeleteUser(ctx context.Context, req *UserRequest) (*emptypb.Empty, error) {
	if err := requireSelf(ctx, req.UserID); err != nil {
		return nil, err
	}
	if err := s.identity.DeleteUser(ctx, req.UserID); err != nil {
		return nil, s.toStatus("DeleteUser", err)
	}
	return &emptypb.Empty{}, nil
}

func sessionReply(s *identity.Session) *SessionReply {
	return &SessionReply{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
		User:         UserReply{ID: s.User.ID, Email: s.User.Email},
	}
}

func (s *Server) toStatus(method string, err error) error {
	switch {
	case errors.Is(err, identity.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, identity.ErrInvalidLogin), errors.Is(err, identity.ErrSessionRevoked):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, identity.ErrUserNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, identity.ErrWeakPassword), errors.Is(err, identity.ErrEmailRequired):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		s.log.Error("identity."+method, err, nil)
		return status.Error(codes.Internal, "internal error")
	}
}

type claimsKey struct{}

// publicMethods are reachable without a bearer token.
var publicMethods = map[string]bool{
	methodSignUp:             true,
	methodSignInWithPassword: true,
	methodRefreshSession:     true,
}

type TokenValidator interface {
	ValidateAccess(token string) (*auth.Claims, error)
}

// AuthInterceptor checks the bearer access token on every non-public method
// and puts its claims on the context.
func AuthInterceptor(v TokenValidator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if publicMethods[info.FullMethod] {
			return handler(ctx, req)
		}
		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}
		authHeader := md.Get("authorization")
		if len(authHeader) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing authorization")
		}
		token := strings.TrimPrefix(authHeader[0], "Bearer ")
		claims, err := v.ValidateAccess(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}
		return handler(context.WithValue(ctx, claimsKey{}, claims), req)
	}
}

func claimsFromContext(ctx context.Context) (*auth.Claims, error) {
	claims, ok := ctx.Value(claimsKey{}).(*auth.Claims)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "Unauthorized")
	}
	return claims, nil
}

func requireSelf(ctx context.Context, userID string) error {
	claims, err := claimsFromContext(ctx)
	if err != nil {
		return err
	}
	if claims.UserID != userID {
		return status.Error(codes.PermissionDenied, "token does not belong to this user")
	}
	return nil
}
