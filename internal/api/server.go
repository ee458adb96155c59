package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/internal/api/handler"
	"github.com/vfg2006/meta-ads-navigator/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-navigator/internal/config"
	"github.com/vfg2006/meta-ads-navigator/internal/scheduler"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/billing"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/creative"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/navigating"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
	"github.com/vfg2006/meta-ads-navigator/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa as operações expostas pela API
type Services struct {
	Resolver     resolving.Resolver
	Navigator    navigating.Navigator
	Insighter    insighting.Insighter
	Creative     creative.CreativeService
	Balance      billing.BalanceService
	BalanceWatch *scheduler.BalanceWatchService
}

type Server struct {
	httpServer *http.Server
}

func New(config *config.Config, services Services) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           NewHandler(config, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta rotas e middlewares
func NewHandler(config *config.Config, services Services) http.Handler {
	cronServices := handler.CronJobServices{}
	if services.BalanceWatch != nil {
		cronServices.BalanceWatch = services.BalanceWatch
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Resolver)...),
		router.WithRoutes(handler.Clients(services.Resolver)...),
		router.WithRoutes(handler.Structure(services.Navigator)...),
		router.WithRoutes(handler.Analytics(services.Insighter)...),
		router.WithRoutes(handler.Creatives(services.Creative)...),
		router.WithRoutes(handler.Balance(services.Balance)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
		router.WithFallbacks(handler.NotFound(), handler.MethodNotAllowed()),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
		middleware.AuthMiddleware(config.Auth.Secret),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
