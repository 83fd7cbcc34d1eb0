package dto

import (
	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/report"
)

// MonthlySpendResponse is one month of spend
type MonthlySpendResponse struct {
	Month          string `json:"month"`
	Total          int64  `json:"total"`
	Count          int    `json:"count"`
	Average        int64  `json:"average"`
	DisplayTotal   string `json:"displayTotal"`
	DisplayAverage string `json:"displayAverage"`
}

// DescriptionSpendResponse is the spend for one description
type DescriptionSpendResponse struct {
	Description  string `json:"description"`
	Total        int64  `json:"total"`
	Count        int    `json:"count"`
	DisplayTotal string `json:"displayTotal"`
}

// FromMonthlySpend maps monthly analytics
func FromMonthlySpend(months []report.MonthlySpend) []MonthlySpendResponse {
	out := make([]MonthlySpendResponse, 0, len(months))
	for _, m := range months {
		out = append(out, MonthlySpendResponse{
			Month:          m.Month,
			Total:          m.Total,
			Count:          m.Count,
			Average:        m.Average,
			DisplayTotal:   entity.FormatAmount(m.Total),
			DisplayAverage: entity.FormatAmount(m.Average),
		})
	}
	return out
}

// FromDescriptionSpend maps description analytics
func FromDescriptionSpend(items []report.DescriptionSpend) []DescriptionSpendResponse {
	out := make([]DescriptionSpendResponse, 0, len(items))
	for _, d := range items {
		out = append(out, DescriptionSpendResponse{
			Description:  d.Description,
			Total:        d.Total,
			Count:        d.Count,
			DisplayTotal: entity.FormatAmount(d.Total),
		})
	}
	return out
}
