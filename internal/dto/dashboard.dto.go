package dto

type RevenueComparisonDTO struct {
	Amount           int64   `json:"amount"`
	LastMonthAmount  int64   `json:"lastMonthAmount"`
	PercentageChange float64 `json:"percentageChange"`
}

type MonthComparisonDTO struct {
	Appointments          int64   `json:"appointments"`
	LastMonthAppointments int64   `json:"lastMonthAppointments"`
	PercentageChange      float64 `json:"percentageChange"`
}

type DayComparisonDTO struct {
	Appointments        int64   `json:"appointments"`
	LastDayAppointments int64   `json:"lastDayAppointments"`
	PercentageChange    float64 `json:"percentageChange"`
}
