package services

import (
	"fmt"
	"sort"

	"tillpoint/entity"
	"tillpoint/repository"
)

type ReportService struct {
	OrderRepo *repository.OrderRepository
}

func NewReportService(or *repository.OrderRepository) *ReportService {
	return &ReportService{OrderRepo: or}
}

type ItemSales struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int64  `json:"revenue"`
}

type ReportResult struct {
	MonthLabel        string      `json:"monthLabel"`
	TotalOrders       int         `json:"totalOrders"`
	TotalRevenue      int64       `json:"totalRevenue"`
	TotalItemsSold    int         `json:"totalItemsSold"`
	AverageOrderValue int64       `json:"averageOrderValue"`
	PerItemBreakdown  []ItemSales `json:"perItemBreakdown"`
}

// Monthly builds the sales report for one calendar month.
func (s *ReportService) Monthly(year, month int) (*ReportResult, error) {
	start, end, err := MonthRange(year, month)
	if err != nil {
		return nil, err
	}
	orders, err := s.OrderRepo.ListBetween(start, end)
	if err != nil {
		return nil, err
	}
	return BuildReport(orders, fmt.Sprintf("%04d-%02d", year, month))
}

// BuildReport aggregates a set of orders into a ReportResult.
//
// Items are grouped by name exactly as stored (case-sensitive) and the
// breakdown is sorted by revenue descending; the sort is stable, so groups
// with equal revenue keep the order in which they were first seen. The
// average is integer division over paise, truncating toward zero.
func BuildReport(orders []entity.Order, monthLabel string) (*ReportResult, error) {
	if len(orders) == 0 {
		return nil, ErrEmptyReport
	}

	r := &ReportResult{
		MonthLabel:       monthLabel,
		TotalOrders:      len(orders),
		PerItemBreakdown: make([]ItemSales, 0),
	}

	index := make(map[string]int)
	for _, o := range orders {
		r.TotalRevenue += o.Total
		for _, it := range o.Items {
			r.TotalItemsSold += it.Qty

			i, ok := index[it.Name]
			if !ok {
				i = len(r.PerItemBreakdown)
				index[it.Name] = i
				r.PerItemBreakdown = append(r.PerItemBreakdown, ItemSales{Name: it.Name})
			}
			r.PerItemBreakdown[i].Quantity += it.Qty
			r.PerItemBreakdown[i].Revenue += it.UnitPrice * int64(it.Qty)
		}
	}

	r.AverageOrderValue = r.TotalRevenue / int64(r.TotalOrders)

	sort.SliceStable(r.PerItemBreakdown, func(i, j int) bool {
		return r.PerItemBreakdown[i].Revenue > r.PerItemBreakdown[j].Revenue
	})

	return r, nil
}
