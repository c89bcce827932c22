package check_availability

import (
	"errors"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
	"github.com/m04kA/SMC-DayCareBooking/internal/service/bookings/models"
	attemptBooking "github.com/m04kA/SMC-DayCareBooking/internal/usecase/attempt_booking"
)

// SelectionRequest выбранная услуга и диапазон дат
type SelectionRequest struct {
	Service   string `json:"service"`   // "elder_care" или "Elder Day Care"
	StartDate string `json:"startDate"` // "2026-10-19", может отсутствовать
	EndDate   string `json:"endDate"`   // "2026-10-23", может отсутствовать
}

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Selections []SelectionRequest `json:"selections"`
}

// ServiceResultResponse результат проверки одной услуги
type ServiceResultResponse struct {
	Service   string                        `json:"service"`
	Name      string                        `json:"name"`
	Available bool                          `json:"available"`
	Detail    *models.ServiceDetailResponse `json:"detail,omitempty"`
	Errors    []string                      `json:"errors,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available bool                           `json:"available"`
	Booking   *models.PendingBookingResponse `json:"booking,omitempty"`
	Summary   string                         `json:"summary,omitempty"`
	Services  []ServiceResultResponse        `json:"services,omitempty"`
	Errors    []string                       `json:"errors,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Даты должны быть строго позже today; ошибки всех выбранных услуг возвращаются вместе как domain.Problems
func (r *CheckAvailabilityRequest) ToUseCaseRequest(today civil.Date) (*attemptBooking.Request, error) {
	req := &attemptBooking.Request{
		Selections: make([]attemptBooking.Selection, 0, len(r.Selections)),
	}

	var problems domain.Problems
	for _, s := range r.Selections {
		service, err := domain.ParseServiceType(s.Service)
		if err != nil {
			problems = append(problems, err)
			continue
		}

		start, startErr := domain.ParseBookingDate(s.StartDate, today)
		if startErr != nil {
			problems = append(problems, &domain.ServiceError{Service: service, Err: fmt.Errorf("start date: %w", startErr)})
		}

		end, endErr := domain.ParseBookingDate(s.EndDate, today)
		if endErr != nil {
			problems = append(problems, &domain.ServiceError{Service: service, Err: fmt.Errorf("end date: %w", endErr)})
		}

		if startErr != nil || endErr != nil {
			continue
		}

		req.Selections = append(req.Selections, attemptBooking.Selection{
			Service: service,
			Range:   domain.DateRange{Start: start, End: end},
		})
	}

	if len(problems) > 0 {
		return nil, problems
	}

	return req, nil
}

// serviceResults собирает результат по каждой выбранной услуге в каноническом порядке
func serviceResults(selections []attemptBooking.Selection, passed []domain.ServiceBookingDetail, problems domain.Problems) []ServiceResultResponse {
	selected := make(map[domain.ServiceType]bool, len(selections))
	for _, s := range selections {
		selected[s.Service] = true
	}

	details := make(map[domain.ServiceType]domain.ServiceBookingDetail, len(passed))
	for _, d := range passed {
		details[d.Service] = d
	}

	results := make([]ServiceResultResponse, 0, len(selected))
	for _, service := range domain.AllServices {
		if !selected[service] {
			continue
		}

		result := ServiceResultResponse{
			Service: string(service),
			Name:    service.DisplayName(),
		}

		for _, p := range problems {
			var serviceErr *domain.ServiceError
			if errors.As(p, &serviceErr) && serviceErr.Service == service {
				result.Errors = append(result.Errors, domain.Problems{p}.Messages()...)
			}
		}

		if detail, ok := details[service]; ok && len(result.Errors) == 0 {
			converted := models.FromDomainDetail(detail)
			result.Available = true
			result.Detail = &converted
		}

		results = append(results, result)
	}

	return results
}
