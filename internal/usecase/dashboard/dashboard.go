package dashboard

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/agenda-api/internal/domain/appointment"
	calc "github.com/BruksfildServices01/agenda-api/internal/domain/dashboard"
	"github.com/BruksfildServices01/agenda-api/internal/dto"
	"github.com/BruksfildServices01/agenda-api/internal/models"
	"github.com/BruksfildServices01/agenda-api/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/agenda-api/internal/usecase/appointment"
)

// Dashboard agrega agendamentos em janelas de calendário no fuso da
// aplicação. Cancelados entram na receita.
type Dashboard struct {
	repo domain.Repository
	loc  *time.Location
	now  func() time.Time
}

func New(repo domain.Repository, loc *time.Location) *Dashboard {
	return &Dashboard{repo: repo, loc: loc, now: time.Now}
}

func (d *Dashboard) between(ctx context.Context, start, end time.Time, status domain.Status) ([]models.Appointment, error) {
	return d.repo.List(ctx, domain.ListFilter{Start: &start, End: &end, Status: status})
}

// monthPair devolve os agendamentos do mês corrente e do anterior.
func (d *Dashboard) monthPair(ctx context.Context, status domain.Status) (current, previous []models.Appointment, err error) {
	now := d.now().In(d.loc)
	last := timezone.PreviousMonth(now)

	current, err = d.between(ctx, timezone.StartOfMonth(now), timezone.EndOfMonth(now), status)
	if err != nil {
		return nil, nil, err
	}
	previous, err = d.between(ctx, timezone.StartOfMonth(last), timezone.EndOfMonth(last), status)
	if err != nil {
		return nil, nil, err
	}
	return current, previous, nil
}

// ======================================================
// MONTH / DAY COMPARISONS
// ======================================================

func (d *Dashboard) TotalMonth(ctx context.Context) (*dto.RevenueComparisonDTO, error) {
	current, previous, err := d.monthPair(ctx, "")
	if err != nil {
		return nil, err
	}

	amount := calc.Revenue(current)
	lastAmount := calc.Revenue(previous)

	return &dto.RevenueComparisonDTO{
		Amount:           amount,
		LastMonthAmount:  lastAmount,
		PercentageChange: calc.PercentageChange(amount, lastAmount),
	}, nil
}

func (d *Dashboard) AppointmentsMonth(ctx context.Context) (*dto.MonthComparisonDTO, error) {
	return d.monthCount(ctx, "")
}

func (d *Dashboard) AppointmentsCanceled(ctx context.Context) (*dto.MonthComparisonDTO, error) {
	return d.monthCount(ctx, domain.StatusCanceled)
}

func (d *Dashboard) monthCount(ctx context.Context, status domain.Status) (*dto.MonthComparisonDTO, error) {
	current, previous, err := d.monthPair(ctx, status)
	if err != nil {
		return nil, err
	}

	cur, prev := int64(len(current)), int64(len(previous))
	return &dto.MonthComparisonDTO{
		Appointments:          cur,
		LastMonthAppointments: prev,
		PercentageChange:      calc.PercentageChange(cur, prev),
	}, nil
}

func (d *Dashboard) AppointmentsDay(ctx context.Context) (*dto.DayComparisonDTO, error) {
	now := d.now().In(d.loc)
	yesterday := now.AddDate(0, 0, -1)

	today, err := d.between(ctx, timezone.StartOfDay(now), timezone.EndOfDay(now), "")
	if err != nil {
		return nil, err
	}
	before, err := d.between(ctx, timezone.StartOfDay(yesterday), timezone.EndOfDay(yesterday), "")
	if err != nil {
		return nil, err
	}

	cur, prev := int64(len(today)), int64(len(before))
	return &dto.DayComparisonDTO{
		Appointments:        cur,
		LastDayAppointments: prev,
		PercentageChange:    calc.PercentageChange(cur, prev),
	}, nil
}

// ======================================================
// INTERVALS
// ======================================================

func (d *Dashboard) interval(ctx context.Context, startDate, endDate string) ([]models.Appointment, error) {
	f, err := ucAppointment.BuildFilter(startDate, endDate, d.loc)
	if err != nil {
		return nil, err
	}
	return d.repo.List(ctx, f)
}

// RevenueByMonth agrupa a receita do intervalo por "Mmm/AA".
func (d *Dashboard) RevenueByMonth(ctx context.Context, startDate, endDate string) (map[string]calc.MonthTotal, error) {
	aps, err := d.interval(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return calc.GroupRevenueByMonth(aps, d.loc), nil
}

func (d *Dashboard) ServicesCount(ctx context.Context, startDate, endDate string) (map[string]int, error) {
	aps, err := d.interval(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}
	return calc.CountByServiceName(aps), nil
}
