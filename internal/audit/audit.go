// Package audit records state transitions. Callers depend on Sink so the
// engine can be tested with an in-memory recorder.
package audit

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go-workforce/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Entry struct {
	OrgID      string
	ActorID    string
	Action     string
	EntityType string
	EntityID   string
	Message    string
	Meta       map[string]any
}

type Sink interface {
	Log(ctx context.Context, entry Entry)
}

type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger ...*zap.Logger) *ZapSink {
	l := zap.L().Named("audit")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit")
	}
	return &ZapSink{logger: l}
}

func (s *ZapSink) Log(ctx context.Context, entry Entry) {
	entry = withCaller(ctx, entry)
	s.logger.Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("org_id", entry.OrgID),
		zap.String("actor_id", entry.ActorID),
		zap.String("action", entry.Action),
		zap.String("entity_type", entry.EntityType),
		zap.String("entity_id", entry.EntityID),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}

type auditLogRow struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrgID      *uuid.UUID `gorm:"type:uuid"`
	ActorID    *uuid.UUID `gorm:"type:uuid"`
	Action     string
	EntityType string
	EntityID   *uuid.UUID `gorm:"type:uuid"`
	Message    string
	Meta       []byte `gorm:"type:jsonb"`
	CreatedAt  time.Time
}

func (auditLogRow) TableName() string {
	return "audit_logs"
}

// GormSink persists entries to audit_logs. Write failures are logged and
// swallowed: audit must never fail the operation it describes.
type GormSink struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db, logger: zap.L().Named("audit.gorm")}
}

func (s *GormSink) Log(ctx context.Context, entry Entry) {
	entry = withCaller(ctx, entry)
	meta, err := json.Marshal(entry.Meta)
	if err != nil {
		meta = []byte("{}")
	}
	row := auditLogRow{
		ID:         uuid.New(),
		OrgID:      parseOptional(entry.OrgID),
		ActorID:    parseOptional(entry.ActorID),
		Action:     entry.Action,
		EntityType: entry.EntityType,
		EntityID:   parseOptional(entry.EntityID),
		Message:    entry.Message,
		Meta:       meta,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		s.logger.Error("persist audit entry failed", zap.String("action", entry.Action), zap.Error(err))
	}
}

type multiSink []Sink

// Multi fans an entry out to every sink.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Log(ctx context.Context, entry Entry) {
	for _, s := range m {
		s.Log(ctx, entry)
	}
}

// Recorder keeps entries in memory.
type Recorder struct {
	mu      sync.Mutex
	Entries []Entry
}

func (r *Recorder) Log(_ context.Context, entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Entries = append(r.Entries, entry)
}

// withCaller fills org and actor from the request identity when the caller
// left them blank.
func withCaller(ctx context.Context, entry Entry) Entry {
	if entry.OrgID == "" {
		entry.OrgID = contextutil.GetOrgID(ctx)
	}
	if entry.ActorID == "" {
		entry.ActorID = contextutil.GetMemberID(ctx)
	}
	return entry
}

func parseOptional(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}
