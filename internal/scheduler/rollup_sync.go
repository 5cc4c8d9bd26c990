package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/gestorpro/analytics-api/infrastructure/repository"
	"github.com/gestorpro/analytics-api/internal/config"
	"github.com/gestorpro/analytics-api/internal/usecases/aggregating"
)

// RollupSyncConfig representa a configuração do agendador da tabela fato
type RollupSyncConfig struct {
	CronSchedule  string
	SyncEnabled   bool
	MonthLookBack int
}

// RollupSyncService gerencia o agendamento e a execução da consolidação
// mensal de vendas na tabela fato
type RollupSyncService struct {
	scheduler           *gocron.Scheduler
	config              RollupSyncConfig
	builder             aggregating.RollupBuilder
	rollupRepo          repository.MonthlyRollupRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewRollupSyncService cria uma nova instância do serviço de consolidação
func NewRollupSyncService(
	builder aggregating.RollupBuilder,
	rollupRepo repository.MonthlyRollupRepository,
	appConfig *config.Config,
) *RollupSyncService {
	syncConfig := RollupSyncConfig{
		CronSchedule:  appConfig.RollupSync.CronSchedule,
		SyncEnabled:   appConfig.RollupSync.Enabled,
		MonthLookBack: appConfig.RollupSync.MonthLookBack,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   syncConfig.CronSchedule,
		"sync_enabled":    syncConfig.SyncEnabled,
		"month_look_back": syncConfig.MonthLookBack,
	}).Info("Configuração do agendador de consolidação mensal carregada")

	return &RollupSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		builder:     builder,
		rollupRepo:  rollupRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *RollupSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Consolidação mensal de vendas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de consolidação mensal de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncRollups()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar consolidação mensal de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de consolidação mensal de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncRollups recalcula e persiste as consolidações dos últimos meses
func (s *RollupSyncService) syncRollups() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação mensal já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.WithField("month_look_back", s.config.MonthLookBack).Info("Iniciando consolidação mensal de vendas")

	synced := 0
	for i := 1; i <= s.config.MonthLookBack; i++ {
		ref := time.Now().AddDate(0, -i, 0)

		rollup, err := s.builder.ComputeMonthlyRollup(ref.Year(), ref.Month())
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"year":  ref.Year(),
				"month": int(ref.Month()),
				"error": err.Error(),
			}).Error("Erro ao recalcular consolidação do mês")
			continue
		}

		if err := s.rollupRepo.SaveOrUpdate(rollup); err != nil {
			logrus.WithFields(logrus.Fields{
				"year":  rollup.Year,
				"month": rollup.Month,
				"error": err.Error(),
			}).Error("Erro ao salvar consolidação do mês")
			continue
		}

		logrus.WithFields(logrus.Fields{
			"period":        rollup.PeriodLabel(),
			"total_revenue": rollup.TotalRevenue.String(),
			"total_orders":  rollup.TotalOrders,
		}).Info("Consolidação mensal salva com sucesso")

		synced++
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"months":   synced,
	}).Info("Consolidação mensal de vendas concluída")

	s.lastSyncCompletedAt = time.Now()
}

// TriggerManualSync inicia manualmente uma consolidação mensal
func (s *RollupSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Consolidação mensal já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando consolidação manual de vendas")
	go s.syncRollups()
}

// GetStatus retorna o status atual da consolidação
func (s *RollupSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"month_look_back":        s.config.MonthLookBack,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
