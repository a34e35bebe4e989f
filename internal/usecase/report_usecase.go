package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"gestor_manutencao/internal/domain/entities"
	"gestor_manutencao/internal/usecase/interfaces"
)

// ReportPeriod is an optional inclusive window over request creation time.
type ReportPeriod struct {
	From *time.Time
	To   *time.Time
}

// RevenueReport aggregates revenue from paid and finalized requests.
type RevenueReport struct {
	Total         float64
	Count         int
	AverageTicket float64
	Requests      []entities.MaintenanceRequest
}

// CategoryRevenue is one row of the grouped revenue report.
type CategoryRevenue struct {
	Category       string
	Count          int
	TotalRevenue   float64
	AverageRevenue float64
	PercentOfTotal float64
}

// CategoryRevenueReport is the grouped-by-category revenue report.
type CategoryRevenueReport struct {
	Total      float64
	Categories []CategoryRevenue
}

// IReportUseCase exposes the side-effect-free revenue reports consumed by the
// employee reporting screens. Empty matching sets yield zeroed reports,
// never an error.

type IReportUseCase interface {
	Revenue(ctx context.Context, period ReportPeriod) (RevenueReport, error)
	RevenueByCategory(ctx context.Context, period ReportPeriod) (CategoryRevenueReport, error)
}

type ReportUseCase struct {
	requestRepo interfaces.IRequestRepository
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(requestRepo interfaces.IRequestRepository) *ReportUseCase {
	return &ReportUseCase{requestRepo: requestRepo}
}

func (u *ReportUseCase) Revenue(ctx context.Context, period ReportPeriod) (RevenueReport, error) {
	matching, err := u.paidRequests(ctx, period)
	if err != nil {
		return RevenueReport{}, err
	}

	report := RevenueReport{Requests: matching, Count: len(matching)}
	for _, r := range matching {
		report.Total += *r.Price
	}
	if report.Count > 0 {
		report.AverageTicket = report.Total / float64(report.Count)
	}
	return report, nil
}

func (u *ReportUseCase) RevenueByCategory(ctx context.Context, period ReportPeriod) (CategoryRevenueReport, error) {
	matching, err := u.paidRequests(ctx, period)
	if err != nil {
		return CategoryRevenueReport{}, err
	}

	totals := map[string]*CategoryRevenue{}
	grandTotal := 0.0
	for _, r := range matching {
		row, ok := totals[r.Category]
		if !ok {
			row = &CategoryRevenue{Category: r.Category}
			totals[r.Category] = row
		}
		row.Count++
		row.TotalRevenue += *r.Price
		grandTotal += *r.Price
	}

	report := CategoryRevenueReport{Total: grandTotal, Categories: make([]CategoryRevenue, 0, len(totals))}
	for _, row := range totals {
		if row.Count > 0 {
			row.AverageRevenue = row.TotalRevenue / float64(row.Count)
		}
		if grandTotal > 0 {
			row.PercentOfTotal = row.TotalRevenue / grandTotal * 100
		}
		report.Categories = append(report.Categories, *row)
	}

	// Highest revenue first; name breaks ties so the output is stable.
	sort.Slice(report.Categories, func(i, j int) bool {
		if report.Categories[i].TotalRevenue != report.Categories[j].TotalRevenue {
			return report.Categories[i].TotalRevenue > report.Categories[j].TotalRevenue
		}
		return strings.Compare(report.Categories[i].Category, report.Categories[j].Category) < 0
	})
	return report, nil
}

// paidRequests returns PAGA/FINALIZADA requests with a price whose creation
// time falls inside the inclusive period.
func (u *ReportUseCase) paidRequests(ctx context.Context, period ReportPeriod) ([]entities.MaintenanceRequest, error) {
	all, err := u.requestRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]entities.MaintenanceRequest, 0, len(all))
	for _, r := range all {
		if r.Status != entities.RequestStatusPaga && r.Status != entities.RequestStatusFinalizada {
			continue
		}
		if r.Price == nil {
			continue
		}
		if period.From != nil && r.CreatedAt.Before(*period.From) {
			continue
		}
		if period.To != nil && r.CreatedAt.After(*period.To) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}
