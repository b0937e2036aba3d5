// Package scheduler contém os serviços agendados do gateway
package scheduler

//go:generate mockgen -source=store_probe.go -destination=mocks/store_pinger.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/brand-spend-api/internal/config"
)

const probeTimeout = 5 * time.Second

type StorePinger interface {
	Ping(ctx context.Context) error
}

type StoreProbeConfig struct {
	CronSchedule string
	Enabled      bool
}

// StoreStatus é o último resultado conhecido da verificação do banco
type StoreStatus struct {
	Enabled       bool       `json:"enabled"`
	Reachable     *bool      `json:"reachable"`
	LastCheckedAt *time.Time `json:"last_checked_at,omitempty"`
}

// StoreProbeService verifica periodicamente se o banco responde. Não guarda
// nenhum resultado de consulta, apenas o estado da conexão.
type StoreProbeService struct {
	scheduler     *gocron.Scheduler
	store         StorePinger
	config        StoreProbeConfig
	statusMutex   sync.RWMutex
	reachable     *bool
	lastCheckedAt time.Time
}

func NewStoreProbeService(store StorePinger, cfg *config.Config) *StoreProbeService {
	probeConfig := StoreProbeConfig{
		CronSchedule: cfg.StoreProbe.CronSchedule,
		Enabled:      cfg.StoreProbe.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)
	scheduler.SingletonModeAll()

	logrus.WithFields(logrus.Fields{
		"cron_schedule": probeConfig.CronSchedule,
		"enabled":       probeConfig.Enabled,
	}).Info("Configuração da verificação do banco carregada")

	return &StoreProbeService{
		scheduler: scheduler,
		store:     store,
		config:    probeConfig,
	}
}

func (s *StoreProbeService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação periódica do banco desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunOnce(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação do banco: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando verificação periódica do banco")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce pinga o banco, atualiza o estado e devolve se ele respondeu
func (s *StoreProbeService) RunOnce(ctx context.Context) bool {
	pingCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := s.store.Ping(pingCtx)
	reachable := err == nil

	s.statusMutex.Lock()
	previous := s.reachable
	s.reachable = &reachable
	s.lastCheckedAt = time.Now()
	s.statusMutex.Unlock()

	if previous == nil || *previous != reachable {
		if reachable {
			logrus.WithField("store_reachable", true).Info("Banco de dados acessível")
		} else {
			logrus.WithError(err).WithField("store_reachable", false).Warn("Banco de dados inacessível")
		}
	}

	return reachable
}

func (s *StoreProbeService) Status() StoreStatus {
	s.statusMutex.RLock()
	defer s.statusMutex.RUnlock()

	status := StoreStatus{Enabled: s.config.Enabled}
	if s.reachable != nil {
		reachable := *s.reachable
		checkedAt := s.lastCheckedAt
		status.Reachable = &reachable
		status.LastCheckedAt = &checkedAt
	}
	return status
}
