package models

import (
	"time"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

// Response модели

// ServiceDetailResponse расчет по одной услуге
type ServiceDetailResponse struct {
	Service  string   `json:"service"`
	Name     string   `json:"name"`
	Dates    []string `json:"dates"` // ["2026-10-19", ...]
	DayCount int      `json:"dayCount"`
	Cost     int      `json:"cost"`
}

// PendingBookingResponse бронирование, ожидающее оплаты
type PendingBookingResponse struct {
	ID           string                  `json:"id"`
	Services     []ServiceDetailResponse `json:"services"`
	TotalCost    int                     `json:"totalCost"`
	TotalDisplay string                  `json:"totalDisplay"` // "Rs. 7000.00"
	Currency     string                  `json:"currency"`
	CreatedAt    time.Time               `json:"createdAt"`
}

// ReceiptResponse квитанция об оплате
type ReceiptResponse struct {
	ID            string                  `json:"id"`
	BookingID     string                  `json:"bookingId"`
	TransactionID string                  `json:"transactionId"`
	TotalCost     int                     `json:"totalCost"`
	TotalDisplay  string                  `json:"totalDisplay"`
	Currency      string                  `json:"currency"`
	DayCounts     map[string]int          `json:"dayCounts"`
	Services      []ServiceDetailResponse `json:"services"`
	PaidAt        time.Time               `json:"paidAt"`
}

// ServiceCapacityResponse занятость одной услуги на дату
type ServiceCapacityResponse struct {
	Booked    int  `json:"booked"`
	Remaining int  `json:"remaining"`
	Full      bool `json:"full"`
}

// CapacityDayResponse занятость на одну дату
type CapacityDayResponse struct {
	Date     string                             `json:"date"`    // "2026-10-20"
	Weekday  string                             `json:"weekday"` // "Tue"
	Services map[string]ServiceCapacityResponse `json:"services"`
}

// CapacityResponse снимок журнала вместимости, отсортированный по дате
type CapacityResponse struct {
	Limit int                   `json:"limit"`
	Days  []CapacityDayResponse `json:"days"`
}

// ServiceInfoResponse услуга из прайс-листа
type ServiceInfoResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	UnitPrice        int    `json:"unitPrice"`
	UnitPriceDisplay string `json:"unitPriceDisplay"`
	Currency         string `json:"currency"`
	DailyCapacity    int    `json:"dailyCapacity"`
}

// ServiceListResponse прайс-лист
type ServiceListResponse struct {
	Services []ServiceInfoResponse `json:"services"`
}

// Методы конвертации

// FromDomainDetail конвертирует расчет по услуге в DTO
func FromDomainDetail(d domain.ServiceBookingDetail) ServiceDetailResponse {
	dates := make([]string, len(d.Dates))
	for i, date := range d.Dates {
		dates[i] = date.String()
	}

	return ServiceDetailResponse{
		Service:  string(d.Service),
		Name:     d.Service.DisplayName(),
		Dates:    dates,
		DayCount: d.DayCount,
		Cost:     d.Cost,
	}
}

// FromDomainPending конвертирует ожидающее бронирование в DTO
func FromDomainPending(p *domain.PendingBooking) *PendingBookingResponse {
	if p == nil {
		return nil
	}

	details := p.Details()
	services := make([]ServiceDetailResponse, len(details))
	for i, d := range details {
		services[i] = FromDomainDetail(d)
	}

	return &PendingBookingResponse{
		ID:           p.ID.String(),
		Services:     services,
		TotalCost:    p.TotalCost,
		TotalDisplay: domain.FormatMoney(p.TotalCost),
		Currency:     domain.CurrencyCode,
		CreatedAt:    p.CreatedAt,
	}
}

// FromDomainReceipt конвертирует квитанцию в DTO
func FromDomainReceipt(r *domain.Receipt) *ReceiptResponse {
	if r == nil {
		return nil
	}

	services := make([]ServiceDetailResponse, len(r.Services))
	for i, d := range r.Services {
		services[i] = FromDomainDetail(d)
	}

	dayCounts := make(map[string]int, len(r.DayCounts))
	for service, count := range r.DayCounts {
		dayCounts[string(service)] = count
	}

	return &ReceiptResponse{
		ID:            r.ID.String(),
		BookingID:     r.BookingID.String(),
		TransactionID: r.TransactionID,
		TotalCost:     r.TotalCost,
		TotalDisplay:  domain.FormatMoney(r.TotalCost),
		Currency:      domain.CurrencyCode,
		DayCounts:     dayCounts,
		Services:      services,
		PaidAt:        r.PaidAt,
	}
}

// FromDomainSnapshot конвертирует снимок журнала в DTO
func FromDomainSnapshot(snapshot domain.LedgerSnapshot) *CapacityResponse {
	resp := &CapacityResponse{
		Limit: domain.MaxCapacity,
		Days:  make([]CapacityDayResponse, len(snapshot)),
	}

	for i, day := range snapshot {
		services := make(map[string]ServiceCapacityResponse, len(day.Counts))
		for service, count := range day.Counts {
			services[string(service)] = ServiceCapacityResponse{
				Booked:    count,
				Remaining: day.Remaining(service),
				Full:      day.IsFull(service),
			}
		}

		resp.Days[i] = CapacityDayResponse{
			Date:     day.Date.String(),
			Weekday:  day.Date.In(time.UTC).Weekday().String()[:3],
			Services: services,
		}
	}

	return resp
}

// ServiceList возвращает прайс-лист всех услуг
func ServiceList() *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceInfoResponse, len(domain.AllServices)),
	}

	for i, s := range domain.AllServices {
		resp.Services[i] = ServiceInfoResponse{
			ID:               string(s),
			Name:             s.DisplayName(),
			UnitPrice:        s.UnitPrice(),
			UnitPriceDisplay: domain.FormatMoney(s.UnitPrice()),
			Currency:         domain.CurrencyCode,
			DailyCapacity:    domain.MaxCapacity,
		}
	}

	return resp
}
