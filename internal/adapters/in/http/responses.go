package http

import (
	"time"

	"nailorders/internal/core/application/usecases/queries"
	"nailorders/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type envelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type listResponse struct {
	Success bool            `json:"success"`
	Cached  bool            `json:"cached"`
	Data    []orderResponse `json:"data"`
}

type singleResponse struct {
	Success bool          `json:"success"`
	Cached  bool          `json:"cached"`
	Data    orderResponse `json:"data"`
}

type statusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type orderResponse struct {
	ID                    string          `json:"id"`
	Customer              string          `json:"customer"`
	Size                  string          `json:"size"`
	SizeLabel             string          `json:"sizeLabel"`
	CustomSizeNote        string          `json:"customSizeNote,omitempty"`
	MissingCustomSizeNote bool            `json:"missingCustomSizeNote,omitempty"`
	Shape                 string          `json:"shape"`
	ShapeLabel            string          `json:"shapeLabel"`
	Quantity              int             `json:"quantity"`
	Price                 decimal.Decimal `json:"price"`
	Note                  string          `json:"note,omitempty"`
	Images                []string        `json:"images"`
	CoverImage            string          `json:"coverImage,omitempty"`
	Status                string          `json:"status"`
	CreatedAt             time.Time       `json:"createdAt"`
}

func toOrderResponse(o *order.Order) orderResponse {
	cover, _ := o.CoverImage()
	return orderResponse{
		ID:                    o.ID(),
		Customer:              o.Customer(),
		Size:                  string(o.Size()),
		SizeLabel:             o.Size().Label(),
		CustomSizeNote:        o.CustomSizeNote(),
		MissingCustomSizeNote: o.MissingCustomSizeNote(),
		Shape:                 string(o.Shape()),
		ShapeLabel:            o.Shape().Label(),
		Quantity:              o.Quantity(),
		Price:                 o.Price(),
		Note:                  o.Note(),
		Images:                o.Images(),
		CoverImage:            cover,
		Status:                o.Status().String(),
		CreatedAt:             o.CreatedAt(),
	}
}

func toOrderResponses(orders []*order.Order) []orderResponse {
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

type monthlyStatsResponse struct {
	Year              int                  `json:"year"`
	Month             int                  `json:"month"`
	OrderCount        int                  `json:"orderCount"`
	ShippedCount      int                  `json:"shippedCount"`
	Revenue           decimal.Decimal      `json:"revenue"`
	AverageOrderValue decimal.Decimal      `json:"averageOrderValue"`
	Days              []dailyStatResponse  `json:"days"`
	Shapes            []labelCountResponse `json:"shapes"`
	Sizes             []labelCountResponse `json:"sizes"`
}

type dailyStatResponse struct {
	Date              string          `json:"date"`
	OrderCount        int             `json:"orderCount"`
	Revenue           decimal.Decimal `json:"revenue"`
	CumulativeRevenue decimal.Decimal `json:"cumulativeRevenue"`
}

type labelCountResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func toMonthlyStatsResponse(s queries.MonthlyStats) monthlyStatsResponse {
	days := make([]dailyStatResponse, 0, len(s.Days))
	for _, d := range s.Days {
		days = append(days, dailyStatResponse{
			Date:              d.Date.Format(time.DateOnly),
			OrderCount:        d.OrderCount,
			Revenue:           d.Revenue,
			CumulativeRevenue: d.CumulativeRevenue,
		})
	}

	return monthlyStatsResponse{
		Year:              s.Year,
		Month:             int(s.Month),
		OrderCount:        s.OrderCount,
		ShippedCount:      s.ShippedCount,
		Revenue:           s.Revenue,
		AverageOrderValue: s.AverageOrderValue,
		Days:              days,
		Shapes:            toLabelCounts(s.Shapes),
		Sizes:             toLabelCounts(s.Sizes),
	}
}

func toLabelCounts(in []queries.LabelCount) []labelCountResponse {
	out := make([]labelCountResponse, 0, len(in))
	for _, lc := range in {
		out = append(out, labelCountResponse{Label: lc.Label, Count: lc.Count})
	}
	return out
}

type customerStatsResponse struct {
	Top       string                 `json:"top"`
	Customers []customerStatResponse `json:"customers"`
}

type customerStatResponse struct {
	Name        string          `json:"name"`
	OrderCount  int             `json:"orderCount"`
	LastOrderAt time.Time       `json:"lastOrderAt"`
	History     []orderResponse `json:"history"`
}

func toCustomerStatsResponse(s queries.CustomerStats) customerStatsResponse {
	customers := make([]customerStatResponse, 0, len(s.Customers))
	for _, c := range s.Customers {
		customers = append(customers, customerStatResponse{
			Name:        c.Name,
			OrderCount:  c.OrderCount,
			LastOrderAt: c.LastOrderAt,
			History:     toOrderResponses(c.History),
		})
	}
	return customerStatsResponse{Top: s.Top, Customers: customers}
}

type dashboardResponse struct {
	MonthRevenue      decimal.Decimal        `json:"monthRevenue"`
	MonthOrderCount   int                    `json:"monthOrderCount"`
	AverageOrderValue decimal.Decimal        `json:"averageOrderValue"`
	PendingCount      int                    `json:"pendingCount"`
	Trend             []dailyRevenueResponse `json:"trend"`
	Recent            []orderResponse        `json:"recent"`
}

type dailyRevenueResponse struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

func toDashboardResponse(d queries.Dashboard) dashboardResponse {
	trend := make([]dailyRevenueResponse, 0, len(d.Trend))
	for _, day := range d.Trend {
		trend = append(trend, dailyRevenueResponse{Date: day.Date.Format(time.DateOnly), Revenue: day.Revenue})
	}

	return dashboardResponse{
		MonthRevenue:      d.MonthRevenue,
		MonthOrderCount:   d.MonthOrderCount,
		AverageOrderValue: d.AverageOrderValue,
		PendingCount:      d.PendingCount,
		Trend:             trend,
		Recent:            toOrderResponses(d.Recent),
	}
}
