package organization

import (
	"context"
	"errors"
	"strings"
	"time"

	organizationerrors "go-workforce/internal/organization/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/civildate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=organization_service.go -destination=mock/organization_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context, orgID string) (Organization, error)
	ListActive(ctx context.Context) ([]Organization, error)
	IsHoliday(ctx context.Context, orgID string, date time.Time) (bool, error)
	AddHoliday(ctx context.Context, orgID string, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, orgID string, q ListHolidaysQuery) ([]HolidayResponse, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Get returns an active organization.
func (s *service) Get(ctx context.Context, orgID string) (Organization, error) {
	if _, err := uuid.Parse(orgID); err != nil {
		return Organization{}, organizationerrors.ErrOrganizationNotFound
	}
	org, err := s.repo.FindByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Organization{}, organizationerrors.ErrOrganizationNotFound
		}
		return Organization{}, apperror.Integrity(err)
	}
	if !org.IsActive {
		return Organization{}, organizationerrors.ErrOrganizationInactive
	}
	return *org, nil
}

func (s *service) ListActive(ctx context.Context) ([]Organization, error) {
	orgs, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	return orgs, nil
}

func (s *service) IsHoliday(ctx context.Context, orgID string, date time.Time) (bool, error) {
	ok, err := s.repo.IsHoliday(ctx, orgID, date)
	if err != nil {
		return false, apperror.Integrity(err)
	}
	return ok, nil
}

func (s *service) AddHoliday(ctx context.Context, orgID string, req CreateHolidayRequest) (HolidayResponse, error) {
	org, err := s.Get(ctx, orgID)
	if err != nil {
		return HolidayResponse{}, err
	}
	date, err := civildate.Parse(req.Date)
	if err != nil {
		return HolidayResponse{}, organizationerrors.ErrInvalidDate
	}

	row := &Holiday{
		ID:          uuid.New(),
		OrgID:       org.ID,
		HolidayDate: date,
		Name:        strings.TrimSpace(req.Name),
	}
	if err := s.repo.CreateHoliday(ctx, row); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return HolidayResponse{}, organizationerrors.ErrHolidayExists
		}
		return HolidayResponse{}, apperror.Integrity(err)
	}
	return mapHoliday(*row), nil
}

func (s *service) ListHolidays(ctx context.Context, orgID string, q ListHolidaysQuery) ([]HolidayResponse, error) {
	from, err := civildate.Parse(q.From)
	if err != nil {
		return nil, organizationerrors.ErrInvalidDate
	}
	to, err := civildate.Parse(q.To)
	if err != nil {
		return nil, organizationerrors.ErrInvalidDate
	}
	rows, err := s.repo.ListHolidays(ctx, orgID, from, to)
	if err != nil {
		return nil, apperror.Integrity(err)
	}
	res := make([]HolidayResponse, len(rows))
	for i, h := range rows {
		res[i] = mapHoliday(h)
	}
	return res, nil
}

func mapHoliday(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:    h.ID.String(),
		OrgID: h.OrgID.String(),
		Date:  civildate.Format(h.HolidayDate),
		Name:  h.Name,
	}
}
