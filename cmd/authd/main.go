// cmd/authd/main.go
package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"

	"google.golang.org/grpc"

	g "github.com/mahabubulhasibshawon/doorrush/internal/adapters/grpc"
	"github.com/mahabubulhasibshawon/doorrush/internal/config"
	"github.com/mahabubulhasibshawon/doorrush/internal/identity"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
	"github.com/mahabubulhasibshawon/doorrush/pkg/auth"
)

func main() {
	log := logger.New("doorrush-authd")
	cfg, err := config.Load()
	if err != nil {
		fatal(log, "config.load", err)
	}

	if err := cfg.Identity.CheckSecret(); err != nil {
		fatal(log, "config.jwt_secret", err)
	}
	if cfg.Identity.Dev {
		log.Warn("config.dev_mode", logger.Fields{"jwt_secret": "built-in allowed"})
	}

	store, err := identity.Open(cfg.Identity.DBPath)
	if err != nil {
		fatal(log, "identity.open", err)
	}
	defer store.Close()

	issuer := auth.NewIssuer(cfg.Identity.JWTSecret, cfg.Identity.AccessTTL, cfg.Identity.RefreshTTL)
	svc := identity.NewService(store, issuer, log)

	lis, err := net.Listen("tcp", cfg.Identity.Listen)
	if err != nil {
		fatal(log, "grpc.listen", err)
	}

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(g.AuthInterceptor(svc)))
	g.RegisterIdentityServer(grpcServer, g.NewServer(svc, log))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		grpcServer.GracefulStop()
	}()

	log.Info("grpc.listen", logger.Fields{"addr": cfg.Identity.Listen})
	if err := grpcServer.Serve(lis); err != nil {
		fatal(log, "grpc.serve", err)
	}
}

func fatal(log *logger.Logger, action string, err error) {
	log.Error(action, err, nil)
	os.Exit(1)
}
