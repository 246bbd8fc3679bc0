package app

import (
	"database/sql"

	"go-workforce/internal/audit"
	"go-workforce/internal/config"
	"go-workforce/internal/dailysummary"
	"go-workforce/internal/ledger"
	"go-workforce/internal/member"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/middleware"
	"go-workforce/internal/organization"
	"go-workforce/internal/payroll"
	"go-workforce/internal/rbac"
	"go-workforce/internal/rbac/infra"
	"go-workforce/internal/shared/counter"
	"go-workforce/internal/shift"
	"go-workforce/internal/timesession"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// modules holds every service of the engine, built once per process.
type modules struct {
	outbox    kafka.OutboxRepository
	audit     audit.Sink
	rbac      rbac.Service
	orgs      organization.Service
	members   member.Service
	shifts    shift.Service
	clock     timesession.Service
	summaries dailysummary.Service
	ledger    ledger.Service
	payroll   payroll.Service
}

func buildModules(db *sql.DB, gormDB *gorm.DB, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) (*modules, error) {
	// --- Repositories ---
	rbacRepo := rbac.NewRepository(gormDB)
	orgRepo := organization.NewRepository(gormDB)
	memberRepo := member.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	sessionRepo := timesession.NewRepository(gormDB)
	summaryRepo := dailysummary.NewRepository(gormDB)
	ledgerRepo := ledger.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer("")
	if err != nil {
		return nil, err
	}

	sink := audit.Multi(audit.NewZapSink(logger), audit.NewGormSink(gormDB))

	// --- Services ---
	m := &modules{outbox: outboxRepo, audit: sink}
	m.rbac = rbac.NewService(rbacRepo, enforcer, logger)
	m.orgs = organization.NewService(orgRepo)
	m.members = member.NewService(db, memberRepo, sink, logger)
	m.shifts = shift.NewService(db, shiftRepo, m.members, sink, logger)
	m.clock = timesession.NewService(db, sessionRepo, timesession.Directories{
		Members: m.members,
		Orgs:    m.orgs,
		Shifts:  m.shifts,
	}, outboxRepo, logger)
	m.summaries = dailysummary.NewService(summaryRepo, dailysummary.Deps{
		Sessions: sessionRepo,
		Members:  m.members,
		Orgs:     m.orgs,
		Shifts:   m.shifts,
	}, rdb, outboxRepo, dailysummary.Options{LockTTL: cfg.Scheduler.BatchLockTTL}, logger)
	m.ledger = ledger.NewService(ledgerRepo, m.members, m.orgs, sink, logger)
	m.payroll = payroll.NewService(db, payrollRepo, counterRepo, payroll.Deps{
		Members:   m.members,
		Orgs:      m.orgs,
		Summaries: m.summaries,
		Ledger:    m.ledger,
	}, outboxRepo, sink, payroll.Options{
		LeaseTTL:                   cfg.Payroll.GenerationLeaseTTL,
		DefaultWorkingHoursPerDay:  cfg.Payroll.DefaultWorkingHoursPerDay,
		DefaultWorkingDaysPerMonth: cfg.Payroll.DefaultWorkingDaysPerMonth,
	}, logger)
	return m, nil
}

func registerRoutes(router *gin.Engine, m *modules, rdb *redis.Client, cfg *config.Config, logger *zap.Logger) {
	auth := middleware.Authenticated(cfg.Auth.JWTSecret, logger)

	// --- Handlers ---
	orgHandler := organization.NewHandler(m.orgs)
	memberHandler := member.NewHandler(m.members, logger)
	shiftHandler := shift.NewHandler(m.shifts)
	clockHandler := timesession.NewHandler(m.clock, rdb, m.rbac, logger)
	summaryHandler := dailysummary.NewHandler(m.summaries, m.rbac, logger)
	ledgerHandler := ledger.NewHandler(m.ledger, logger)
	payrollHandler := payroll.NewHandler(m.payroll, rdb, logger)
	rbacHandler := rbac.NewHandler(m.rbac, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		organization.RegisterRoutes(api, orgHandler, m.rbac, auth)
		member.RegisterRoutes(api, memberHandler, m.rbac, auth)
		shift.RegisterRoutes(api, shiftHandler, m.rbac, auth)
		timesession.RegisterRoutes(api, clockHandler, m.rbac, auth, rdb)
		dailysummary.RegisterRoutes(api, summaryHandler, m.rbac, auth)
		ledger.RegisterRoutes(api, ledgerHandler, m.rbac, auth)
		payroll.RegisterRoutes(api, payrollHandler, m.rbac, auth, rdb)
		rbac.RegisterRoutes(api, rbacHandler, m.rbac, auth)
	}
}
