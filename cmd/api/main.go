package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-spend-api/infrastructure/database/sqlstore"
	"github.com/vfg2006/brand-spend-api/infrastructure/repository"
	"github.com/vfg2006/brand-spend-api/internal/api"
	"github.com/vfg2006/brand-spend-api/internal/config"
	"github.com/vfg2006/brand-spend-api/internal/scheduler"
	"github.com/vfg2006/brand-spend-api/internal/usecases/reporting"
	"github.com/vfg2006/brand-spend-api/pkg/log"
)

const startupPingTimeout = 5 * time.Second

func main() {
	// Formato padrão até a configuração ser lida
	log.Configure("info")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := storeConn(ctx, cfg.Database)
	defer store.Close()

	executor := sqlstore.NewExecutor(store)
	brandSpendRepo := repository.NewBrandSpendRepository(executor, store.Placeholder(), cfg.Tables)
	reportService := reporting.NewReportService(brandSpendRepo)

	storeProbeService := scheduler.NewStoreProbeService(store, cfg)
	if err := storeProbeService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar a verificação periódica do banco")
	}

	server, err := api.New(cfg, reportService, storeProbeService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// storeConn prepara o acesso ao banco. Um banco fora do ar não impede o
// servidor de subir: cada requisição tenta de novo e responde 500 se falhar.
func storeConn(ctx context.Context, dbConfig config.Database) *sqlstore.Connection {
	conn, err := sqlstore.NewConnection(dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o acesso ao banco de dados")
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()

	if err := conn.Ping(pingCtx); err != nil {
		logrus.WithError(err).WithField("driver", conn.Driver()).Warn("Banco de dados inacessível na inicialização")
		return conn
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de dados estabelecida com sucesso")
	return conn
}
