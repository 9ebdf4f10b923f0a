package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/filmsocial/filmrate/internal/controller/catalog"
	"github.com/filmsocial/filmrate/internal/controller/film"
	"github.com/filmsocial/filmrate/internal/controller/review"
	"github.com/filmsocial/filmrate/internal/controller/user"
	httphandler "github.com/filmsocial/filmrate/internal/handler/http"
	"github.com/filmsocial/filmrate/internal/ingester/kafka"
	"github.com/filmsocial/filmrate/internal/repository/memory"
	"github.com/filmsocial/filmrate/internal/repository/mysql"
	"github.com/filmsocial/filmrate/pkg/discovery"
	"github.com/filmsocial/filmrate/pkg/discovery/consul"
	"github.com/filmsocial/filmrate/pkg/tracing"
	"github.com/opentracing/opentracing-go"
	"github.com/uber-go/tally/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

const serviceName = "filmrate"

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	f, err := os.Open("configs/default.yaml")
	if err != nil {
		logger.Fatal("Failed to open configuration", zap.Error(err))
	}
	var cfg config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		logger.Fatal("Failed to parse configuration", zap.Error(err))
	}
	f.Close()
	port := cfg.API.Port
	logger.Info("Starting the filmrate service", zap.Int("port", port))

	registry, err := consul.NewRegistry(cfg.ServiceDiscovery.Consul.Address)
	if err != nil {
		logger.Fatal("Failed to init service registry", zap.Error(err))
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tracer, err := tracing.NewTracer(serviceName, cfg.Jaeger.Host, cfg.Jaeger.Port, logger)
	if err != nil {
		logger.Fatal("Failed to initialize Jaeger tracer", zap.Error(err))
	}
	opentracing.SetGlobalTracer(tracer)
	logger.Info("Jaeger tracer initialized successfully", zap.String("service", serviceName))

	instanceID := discovery.GenerateInstanceID(serviceName)
	if err := registry.Register(ctx, instanceID, serviceName, fmt.Sprintf("localhost:%d", port)); err != nil {
		logger.Fatal("Failed to register service", zap.Error(err))
	}
	go func() {
		for {
			if err := registry.ReportHealthyState(instanceID, serviceName); err != nil {
				log.Println("Failed to report healthy state: " + err.Error())
			}
			time.Sleep(1 * time.Second)
		}
	}()
	defer registry.Deregister(ctx, instanceID, serviceName)

	scope, scopeCloser := tally.NewRootScope(tally.ScopeOptions{
		Reporter: tally.NullStatsReporter,
	}, 10*time.Second)
	defer scopeCloser.Close()

	var ingester *kafka.Ingester
	if cfg.Kafka.Enabled {
		ingester, err = kafka.NewIngester(cfg.Kafka.Address, cfg.Kafka.GroupID, cfg.Kafka.Topic, logger)
		if err != nil {
			logger.Fatal("Failed to init mark ingester", zap.Error(err))
		}
	}

	var (
		filmCtrl   *film.Controller
		userCtrl   *user.Controller
		reviewCtrl *review.Controller
		catCtrl    *catalog.Controller
	)
	switch cfg.Database.Driver {
	case "mysql":
		db, err := mysql.New(cfg.Database.DSN)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()
		films := mysql.NewFilmRepository(db)
		users := mysql.NewUserRepository(db)
		marks := mysql.NewMarkRepository(db)
		friends := mysql.NewFriendRepository(db)
		reviews := mysql.NewReviewRepository(db)
		votes := mysql.NewVoteRepository(db)
		events := mysql.NewEventRepository(db)
		directors := mysql.NewDirectorRepository(db)
		filmCtrl = film.New(films, marks, users, directors, events, ingester, logger, scope)
		userCtrl = user.New(users, friends, marks, votes, events, logger, scope)
		reviewCtrl = review.New(reviews, votes, films, users, events, logger)
		catCtrl = catalog.New(directors, mysql.NewGenreRepository(db), mysql.NewMpaRepository(db))
	default:
		films := memory.NewFilmRepository()
		users := memory.NewUserRepository()
		marks := memory.NewMarkRepository()
		friends := memory.NewFriendRepository()
		reviews := memory.NewReviewRepository()
		votes := memory.NewVoteRepository()
		events := memory.NewEventRepository()
		directors := memory.NewDirectorRepository()
		filmCtrl = film.New(films, marks, users, directors, events, ingester, logger, scope)
		userCtrl = user.New(users, friends, marks, votes, events, logger, scope)
		reviewCtrl = review.New(reviews, votes, films, users, events, logger)
		catCtrl = catalog.New(directors, memory.NewGenreRepository(), memory.NewMpaRepository())
	}

	if cfg.Kafka.Enabled {
		go func() {
			if err := filmCtrl.StartIngestion(ctx); err != nil {
				logger.Error("Mark ingestion stopped", zap.Error(err))
			}
		}()
	}

	h := httphandler.New(filmCtrl, userCtrl, reviewCtrl, catCtrl, logger)
	limiter := rate.NewLimiter(100, 100)
	srv := &http.Server{
		Addr: fmt.Sprintf("localhost:%d", port),
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			h.Router().ServeHTTP(w, r)
		}),
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		s := <-sigChan
		logger.Info("Received signal, attempting graceful shutdown", zap.Any("signal", s))
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Failed to shut down the HTTP server", zap.Error(err))
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("Failed to serve HTTP server", zap.Error(err))
	}
	logger.Info("Gracefully stopped the HTTP server")
}
