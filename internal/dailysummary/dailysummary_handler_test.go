package dailysummary_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-workforce/internal/dailysummary"
	"go-workforce/internal/dailysummary/mock"
	"go-workforce/internal/domain"
	"go-workforce/internal/middleware"
	"go-workforce/internal/shared/civildate"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type staticRBAC bool

func (s staticRBAC) Enforce(domain.EnforceRequest) (bool, error) {
	return bool(s), nil
}

func newContext(method, target, body, orgID, memberID string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.CtxOrgID, orgID)
	c.Set(middleware.CtxMemberID, memberID)
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	c.Request = r
	return c, w
}

func TestHandler_Daily(t *testing.T) {
	gin.SetMode(gin.TestMode)
	orgID := uuid.New().String()
	self := uuid.New().String()
	other := uuid.New().String()
	day := civildate.New(2026, 3, 2)

	t.Run("own summary", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().GetDailySummary(gomock.Any(), orgID, self, day).
			Return(dailysummary.SummaryResponse{MemberID: self, Status: dailysummary.StatusExtra, ExtraMinutes: 60}, nil)

		c, w := newContext(http.MethodGet, "/summaries/daily?date=2026-03-02", "", orgID, self)
		dailysummary.NewHandler(svc, staticRBAC(false)).Daily(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"extra_minutes":60`)
	})

	t.Run("other member without read_all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newContext(http.MethodGet, "/summaries/daily?date=2026-03-02&member_id="+other, "", orgID, self)
		dailysummary.NewHandler(svc, staticRBAC(false)).Daily(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("other member with read_all", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)
		svc.EXPECT().GetDailySummary(gomock.Any(), orgID, other, day).
			Return(dailysummary.SummaryResponse{MemberID: other}, nil)

		c, w := newContext(http.MethodGet, "/summaries/daily?date=2026-03-02&member_id="+other, "", orgID, self)
		dailysummary.NewHandler(svc, staticRBAC(true)).Daily(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mock.NewMockService(ctrl)

		c, w := newContext(http.MethodGet, "/summaries/daily?date=02-03-2026", "", orgID, self)
		dailysummary.NewHandler(svc, staticRBAC(true)).Daily(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Apply(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	orgID := uuid.New().String()
	memberID := uuid.New().String()

	svc := mock.NewMockService(ctrl)
	svc.EXPECT().ApplyShiftRulesToDay(gomock.Any(), orgID, memberID, civildate.New(2026, 3, 2)).Return(nil)

	body := `{"member_id":"` + memberID + `","date":"2026-03-02"}`
	c, w := newContext(http.MethodPost, "/summaries/apply", body, orgID, uuid.New().String())
	dailysummary.NewHandler(svc, staticRBAC(true)).Apply(c)

	assert.Equal(t, http.StatusOK, w.Code)
}
