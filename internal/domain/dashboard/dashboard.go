package dashboard

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/agenda-api/internal/models"
)

var hundred = decimal.NewFromInt(100)

// PercentageChange = (current-previous)/previous*100, arredondado em 2
// casas. Sem base de comparação (previous == 0) o resultado é 0.
func PercentageChange(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}
	cur := decimal.NewFromInt(current)
	prev := decimal.NewFromInt(previous)

	pct, _ := cur.Sub(prev).Div(prev).Mul(hundred).Round(2).Float64()
	return pct
}

func servicePrice(ap models.Appointment) int64 {
	return ap.ProfessionalService.Service.Price
}

func Revenue(aps []models.Appointment) int64 {
	var total int64
	for _, ap := range aps {
		total += servicePrice(ap)
	}
	return total
}

// ======================================================
// GROUPING
// ======================================================

var monthAbbr = [...]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

type MonthTotal struct {
	TotalAmount int64 `json:"totalAmount"`
}

// MonthKey formata o mês como "Jan/24" no fuso informado.
func MonthKey(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return fmt.Sprintf("%s/%02d", monthAbbr[t.Month()-1], t.Year()%100)
}

func GroupRevenueByMonth(aps []models.Appointment, loc *time.Location) map[string]MonthTotal {
	out := make(map[string]MonthTotal)
	for _, ap := range aps {
		key := MonthKey(ap.DateTime, loc)
		bucket := out[key]
		bucket.TotalAmount += servicePrice(ap)
		out[key] = bucket
	}
	return out
}

// CountByServiceName conta agendamentos por nome de serviço, ignorando
// serviços sem nome.
func CountByServiceName(aps []models.Appointment) map[string]int {
	out := make(map[string]int)
	for _, ap := range aps {
		name := ap.ProfessionalService.Service.Name
		if name == "" {
			continue
		}
		out[name]++
	}
	return out
}
