package audit

import (
	"context"
	"testing"

	"go-workforce/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapSink_LogsFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewZapSink(zap.New(core))

	sink.Log(context.Background(), Entry{
		OrgID:  "org-1",
		Action: "PAYROLL_APPROVED",
		Meta:   map[string]any{"scope": "team", "count": 3},
	})

	entries := logs.FilterMessage("audit event").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, "PAYROLL_APPROVED", entries[0].ContextMap()["action"])
	assert.Equal(t, "org-1", entries[0].ContextMap()["org_id"])
}

func TestMulti_FansOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	Multi(a, b).Log(context.Background(), Entry{Action: "PAYROLL_LOCKED"})

	assert.Len(t, a.Entries, 1)
	assert.Len(t, b.Entries, 1)
	assert.Nil(t, parseOptional("not-a-uuid"))
}

func TestZapSink_FillsCallerFromContext(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewZapSink(zap.New(core))

	ctx := contextutil.WithOrgID(context.Background(), "org-9")
	ctx = contextutil.WithMemberID(ctx, "mem-3")
	sink.Log(ctx, Entry{Action: "MANAGER_CHANGED", ActorID: "mem-1"})

	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "org-9", fields["org_id"])
	assert.Equal(t, "mem-1", fields["actor_id"])
}
