package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/repository"
	"github.com/vfg2006/meta-ads-navigator/internal/api"
	"github.com/vfg2006/meta-ads-navigator/internal/config"
	"github.com/vfg2006/meta-ads-navigator/internal/domain"
	"github.com/vfg2006/meta-ads-navigator/internal/scheduler"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/billing"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/creative"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/insighting"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/navigating"
	"github.com/vfg2006/meta-ads-navigator/internal/usecases/resolving"
	"github.com/vfg2006/meta-ads-navigator/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	directory := loadClientDirectory(ctx, cfg)
	logrus.WithField("clients", directory.Len()).Info("Diretório de clientes carregado")

	checkToken(cfg)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(metaClient)

	resolver := resolving.NewService(directory)
	balanceService := billing.NewService(resolver, metaIntegrator)

	balanceWatchService := scheduler.NewBalanceWatchService(resolver, balanceService, cfg)
	if err := balanceWatchService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de monitoramento de saldo")
	}

	server, err := api.New(cfg, api.Services{
		Resolver:     resolver,
		Navigator:    navigating.NewService(resolver, metaIntegrator),
		Insighter:    insighting.NewService(metaIntegrator),
		Creative:     creative.NewService(metaIntegrator),
		Balance:      balanceService,
		BalanceWatch: balanceWatchService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource faz o .env ao lado do código ser encontrado em execuções locais
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// loadClientDirectory carrega o diretório do arquivo ou do PostgreSQL.
// Falha aqui encerra o processo antes de qualquer requisição.
func loadClientDirectory(ctx context.Context, cfg *config.Config) *domain.ClientDirectory {
	switch cfg.Clients.Source {
	case config.ClientsSourcePostgres:
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		clients, err := repository.NewClientRepository(pgConn).ListClients(ctx)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao carregar clientes do PostgreSQL")
		}

		return domain.NewClientDirectory(clients)
	default:
		directory, err := config.LoadClientDirectory(cfg.Clients.File)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao carregar o diretório de clientes")
		}

		return directory
	}
}

func checkToken(cfg *config.Config) {
	valid, err := metaclient.CheckTokenValidity(cfg.Meta.AccessToken, cfg.Meta.URL)
	if err != nil {
		logrus.WithError(err).Warn("Não foi possível verificar o token do Meta")
		return
	}

	if !valid {
		logrus.Warn("Token do Meta inválido ou expirado; as consultas vão devolver o erro da API")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
