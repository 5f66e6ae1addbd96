package response

import (
	"adslot-panel/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	Client         string    `json:"client"`
	StartDate      string    `json:"startDate"`
	ContractedDays int       `json:"contractedDays"`
	PriceCents     int64     `json:"priceCents"`
	DaysUsed       int       `json:"daysUsed"`
	Status         string    `json:"status"`
	Notes          string    `json:"notes,omitempty"`
}

type ParseFailureResponse struct {
	RowIndex int    `json:"rowIndex"`
	Reason   string `json:"reason"`
}

type BookingListResponse struct {
	Bookings      []*BookingResponse     `json:"bookings"`
	ParseFailures []ParseFailureResponse `json:"parseFailures,omitempty"`
}

type DashboardResponse struct {
	Active       int   `json:"active"`
	Expired      int   `json:"expired"`
	Total        int   `json:"total"`
	RevenueCents int64 `json:"revenueCents"`
}

type PeriodSummaryResponse struct {
	Period     string `json:"period"`
	TotalCents int64  `json:"totalCents"`
}

type ClientSummaryResponse struct {
	Client     string `json:"client"`
	TotalCents int64  `json:"totalCents"`
}

func FromBookingView(view *queries.BookingView) *BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromBookingList(list *queries.BookingList) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]*BookingResponse, len(list.Bookings)),
	}
	for i, v := range list.Bookings {
		resp.Bookings[i] = FromBookingView(v)
	}
	for _, f := range list.ParseFailures {
		resp.ParseFailures = append(resp.ParseFailures, ParseFailureResponse{RowIndex: f.RowIndex, Reason: f.Reason})
	}
	return resp
}

func FromDashboardView(view *queries.DashboardView) *DashboardResponse {
	var resp DashboardResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromPeriodSummaries(views []queries.PeriodSummaryView) []PeriodSummaryResponse {
	resp := make([]PeriodSummaryResponse, len(views))
	for i, v := range views {
		resp[i] = PeriodSummaryResponse{Period: v.Period, TotalCents: v.TotalCents}
	}
	return resp
}

func FromClientSummaries(views []queries.ClientSummaryView) []ClientSummaryResponse {
	resp := make([]ClientSummaryResponse, len(views))
	for i, v := range views {
		resp[i] = ClientSummaryResponse{Client: v.Client, TotalCents: v.TotalCents}
	}
	return resp
}
