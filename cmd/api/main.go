package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gestorpro/analytics-api/infrastructure/database/postgres"
	"github.com/gestorpro/analytics-api/infrastructure/integrator/forecast"
	"github.com/gestorpro/analytics-api/infrastructure/integrator/forecast/forecastclient"
	"github.com/gestorpro/analytics-api/infrastructure/repository"
	"github.com/gestorpro/analytics-api/internal/api"
	"github.com/gestorpro/analytics-api/internal/config"
	"github.com/gestorpro/analytics-api/internal/scheduler"
	"github.com/gestorpro/analytics-api/internal/usecases/aggregating"
	"github.com/gestorpro/analytics-api/internal/usecases/forecasting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	rollupRepo := repository.NewMonthlyRollupRepository(pgConn)

	aggregatorService := aggregating.NewService(cfg, invoiceRepo, rollupRepo)

	forecastClient := forecastclient.NewClient(cfg)
	forecastIntegrator := forecast.New(cfg, forecastClient)
	forecastService := forecasting.NewService(cfg, aggregatorService, forecastIntegrator)

	// Agendador que mantém a tabela fato de consolidação mensal
	rollupSyncService := scheduler.NewRollupSyncService(aggregatorService, rollupRepo, cfg)

	if err := rollupSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de consolidação mensal")
	} else {
		logrus.Info("Agendador de consolidação mensal iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		aggregatorService,
		forecastService,
		rollupSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
