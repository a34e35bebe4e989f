package response

import "gestor_manutencao/internal/usecase"

type RevenueReportResponse struct {
	Total         float64                      `json:"total"`
	Count         int                          `json:"count"`
	AverageTicket float64                      `json:"average_ticket"`
	Requests      []MaintenanceRequestResponse `json:"requests"`
}

func FromRevenueReport(r usecase.RevenueReport) RevenueReportResponse {
	return RevenueReportResponse{
		Total:         r.Total,
		Count:         r.Count,
		AverageTicket: r.AverageTicket,
		Requests:      FromMaintenanceRequests(r.Requests),
	}
}

type CategoryRevenueResponse struct {
	Category       string  `json:"category"`
	Count          int     `json:"count"`
	TotalRevenue   float64 `json:"total_revenue"`
	AverageRevenue float64 `json:"average_revenue"`
	PercentOfTotal float64 `json:"percent_of_total"`
}

type CategoryRevenueReportResponse struct {
	Total      float64                   `json:"total"`
	Categories []CategoryRevenueResponse `json:"categories"`
}

func FromCategoryRevenueReport(r usecase.CategoryRevenueReport) CategoryRevenueReportResponse {
	out := CategoryRevenueReportResponse{
		Total:      r.Total,
		Categories: make([]CategoryRevenueResponse, 0, len(r.Categories)),
	}
	for _, row := range r.Categories {
		out.Categories = append(out.Categories, CategoryRevenueResponse{
			Category:       row.Category,
			Count:          row.Count,
			TotalRevenue:   row.TotalRevenue,
			AverageRevenue: row.AverageRevenue,
			PercentOfTotal: row.PercentOfTotal,
		})
	}
	return out
}
