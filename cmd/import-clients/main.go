package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-navigator/infrastructure/repository"
	"github.com/vfg2006/meta-ads-navigator/internal/config"
	"github.com/vfg2006/meta-ads-navigator/pkg/log"
)

// Copia o clients.json (CLIENTS_FILE) para a tabela de contas do PostgreSQL
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	directory, err := config.LoadClientDirectory(cfg.Clients.File)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o diretório de clientes")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	logrus.WithField("clients", directory.Len()).Info("Iniciando importação de clientes")

	imported, err := repository.NewClientImporter(conn).ImportClients(ctx, directory.Clients())
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao importar clientes")
	}

	logrus.WithFields(logrus.Fields{
		"imported": imported,
		"total":    directory.Len(),
		"elapsed":  time.Since(startTime).String(),
	}).Info("Importação de clientes concluída")
}
