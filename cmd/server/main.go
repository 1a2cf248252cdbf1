// cmd/server/main.go
package main

import (
	"context"
	"database/sql"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	g "github.com/mahabubulhasibshawon/doorrush/internal/adapters/grpc"
	web "github.com/mahabubulhasibshawon/doorrush/internal/adapters/http"
	"github.com/mahabubulhasibshawon/doorrush/internal/adapters/realtime"
	"github.com/mahabubulhasibshawon/doorrush/internal/adapters/redis"
	"github.com/mahabubulhasibshawon/doorrush/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/doorrush/internal/adapters/storage"
	"github.com/mahabubulhasibshawon/doorrush/internal/application"
	"github.com/mahabubulhasibshawon/doorrush/internal/config"
	"github.com/mahabubulhasibshawon/doorrush/internal/logger"
)

func main() {
	log := logger.New("doorrush")
	cfg, err := config.Load()
	if err != nil {
		fatal(log, "config.load", err)
	}

	if cfg.LegacyLoginEnabled {
		log.Warn("config.legacy_login", logger.Fields{"review": "legacy password column login is enabled"})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fatal(log, "db.open", err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		fatal(log, "db.ping", err)
	}
	if err := repository.InitSchema(ctx, db); err != nil {
		fatal(log, "db.init_schema", err)
	}
	repo := repository.NewPostgresRepository(db)

	cache := redis.NewCache(cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB, 24*time.Hour)
	defer cache.Close()
	if err := cache.Ping(ctx); err != nil {
		fatal(log, "redis.ping", err)
	}

	pool, err := realtime.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		fatal(log, "realtime.connect", err)
	}
	defer pool.Close()
	feed := realtime.NewFeed(log)
	go func() {
		if err := feed.Listen(ctx, pool, repository.ChangeChannel); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("realtime.listen", err, nil)
		}
	}()

	cc, err := g.Dial(cfg.Identity.Addr)
	if err != nil {
		fatal(log, "identity.dial", err)
	}
	defer cc.Close()
	identity := g.NewClient(cc, cache, log)

	store, err := storage.NewLocalStore(cfg.StorageDir, "/files/")
	if err != nil {
		fatal(log, "storage.open", err)
	}

	outbox := web.NewOutbox()
	profiles := application.NewProfileService(repo, store, log)
	authenticator := application.NewAuthenticator(log,
		application.NewBackendStrategy(identity, repo),
		application.NewLegacyStrategy(repo, cfg.LegacyLoginEnabled, log),
	)
	authSvc := application.NewAuthService(identity, repo, profiles, authenticator, log)
	session := application.NewSessionManager(identity, repo, cache, authSvc, outbox, log, cfg.SessionCheckTimeout)
	defer session.Close()

	directory := application.NewAgentDirectory(repo, feed, log)
	agentList := application.NewAgentList(directory)
	orders := application.NewOrderService(repo, directory, log)
	prefs := application.NewPreferencesService(log)
	alerts := application.NewOrderAlerts(
		application.NewOrderStatusWatcher(feed, log),
		application.NewNotifier(prefs, outbox, log),
		log,
	)
	defer alerts.Close()
	unsubscribe := session.Subscribe(func(snap application.Snapshot) { alerts.Follow(ctx, snap) })
	defer unsubscribe()

	if sub, err := agentList.Watch(ctx); err != nil {
		log.Error("agents.watch", err, nil)
	} else {
		defer sub.Close()
	}

	router := web.NewRouter(web.Deps{
		Session:     session,
		Auth:        authSvc,
		Profiles:    profiles,
		Orders:      orders,
		Workflow:    application.NewOrderWorkflow(orders, session, outbox, cfg.BaseCharge, log),
		Agents:      directory,
		AgentList:   agentList,
		Messenger:   application.NewMessenger(repo, session, log),
		Preferences: prefs,
		Feedback:    application.NewFeedbackService(repo, log),
		Tips:        application.NewTipService(log),
		Effects:     outbox,
		Log:         log,
		FilesDir:    store.Root(),
	})

	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router, ReadHeaderTimeout: 10 * time.Second}
	go func() {
		<-ctx.Done()
		shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdown)
	}()

	lis, err := net.Listen("tcp", cfg.HTTPAddr)
	if err != nil {
		fatal(log, "http.listen", err)
	}
	log.Info("http.listen", logger.Fields{"addr": lis.Addr().String(), "single_user": true})

	// Guarded pages answer with the loading view until the check settles.
	go func() {
		session.Init(ctx)
		agentList.Reload(ctx)
	}()

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fatal(log, "http.serve", err)
	}
}

func fatal(log *logger.Logger, action string, err error) {
	log.Error(action, err, nil)
	os.Exit(1)
}
