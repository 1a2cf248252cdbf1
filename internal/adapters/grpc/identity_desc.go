// internal/adapters/grpc/identity_desc.go
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

const identityServiceName = "doorrush.identity.v1.Identity"

const (
	methodSignUp             = "/" + identityServiceName + "/SignUp"
	methodSignInWithPassword = "/" + identityServiceName + "/SignInWithPassword"
	methodGetUser            = "/" + identityServiceName + "/GetUser"
	methodRefreshSession     = "/" + identityServiceName + "/RefreshSession"
	methodUpdatePassword     = "/" + identityServiceName + "/UpdatePassword"
	methodSignOut            = "/" + identityServiceName + "/SignOut"
	methodDeleteUser         = "/" + identityServiceName + "/DeleteUser"
)

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserReply struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type SessionReply struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         UserReply `json:"user"`
}

type UserRequest struct {
	UserID string `json:"user_id"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdatePasswordRequest struct {
	Password string `json:"password"`
}

type IdentityServer interface {
	SignUp(context.Context, *CredentialsRequest) (*SessionReply, error)
	SignInWithPassword(context.Context, *CredentialsRequest) (*SessionReply, error)
	GetUser(context.Context, *UserRequest) (*UserReply, error)
	RefreshSession(context.Context, *RefreshRequest) (*SessionReply, error)
	UpdatePassword(context.Context, *UpdatePasswordRequest) (*emptypb.Empty, error)
	SignOut(context.Context, *RefreshRequest) (*emptypb.Empty, error)
	DeleteUser(context.Context, *UserRequest) (*emptypb.Empty, error)
}

func RegisterIdentityServer(s grpc.ServiceRegistrar, srv IdentityServer) {
	s.RegisterService(&identityServiceDesc, srv)
}

// unary builds a method handler the way protoc-gen-go-grpc does.
func unary[Req any, Resp any](fullMethod string, call func(IdentityServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(IdentityServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(IdentityServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var identityServiceDesc = grpc.ServiceDesc{
	ServiceName: identityServiceName,
	HandlerType: (*IdentityServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "SignUp", Handler: unary(methodSignUp, IdentityServer.SignUp)},
		{MethodName: "SignInWithPassword", Handler: unary(methodSignInWithPassword, IdentityServer.SignInWithPassword)},
		{MethodName: "GetUser", Handler: unary(methodGetUser, IdentityServer.GetUser)},
		{MethodName: "RefreshSession", Handler: unary(methodRefreshSession, IdentityServer.RefreshSession)},
		{MethodName: "UpdatePassword", Handler: unary(methodUpdatePassword, IdentityServer.UpdatePassword)},
		{MethodName: "SignOut", Handler: unary(methodSignOut, IdentityServer.SignOut)},
		{MethodName: "DeleteUser", Handler: unary(methodDeleteUser, IdentityServer.DeleteUser)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "doorrush/identity/v1/identity.proto",
}

// IdentityClient is the client stub for the identity service.
type IdentityClient struct {
	cc grpc.ClientConnInterface
}

func NewIdentityClient(cc grpc.ClientConnInterface) *IdentityClient {
	return &IdentityClient{cc: cc}
}

func (c *IdentityClient) SignUp(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*SessionReply, error) {
	out := new(SessionReply)
	if err := c.cc.Invoke(ctx, methodSignUp, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *IdentityClient) SignInWithPassword(ctx context.Context, in *CredentialsRequest, opts ...grpc.CallOption) (*SessionReply, error) {
	out := new(SessionReply)
	if err := c.cc.Invoke(ctx, methodSignInWithPassword, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *IdentityClient) GetUser(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*UserReply, error) {
	out := new(UserReply)
	if err := c.cc.Invoke(ctx, methodGetUser, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *IdentityClient) RefreshSession(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*SessionReply, error) {
	out := new(SessionReply)
	if err := c.cc.Invoke(ctx, methodRefreshSession, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *IdentityClient) UpdatePassword(ctx context.Context, in *UpdatePasswordRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, methodUpdatePassword, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *IdentityClient) SignOut(ctx context.Context, in *RefreshRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, methodSignOut, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *IdentityClient) DeleteUser(ctx context.Context, in *UserRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, methodDeleteUser, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
