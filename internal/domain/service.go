package domain

import (
	"fmt"
	"strings"
)

// ServiceType represents a day-care service that can be booked per weekday
type ServiceType string

const (
	ServiceElderCare ServiceType = "elder_care"
	ServiceChildCare ServiceType = "child_care"
)

// AllServices lists every bookable service in canonical order.
// Checks, summaries and receipts iterate services in this order.
var AllServices = []ServiceType{
	ServiceElderCare,
	ServiceChildCare,
}

// IsValid returns true if the service is one of the known service types
func (s ServiceType) IsValid() bool {
	return s == ServiceElderCare || s == ServiceChildCare
}

// UnitPrice returns the price of one booked weekday
func (s ServiceType) UnitPrice() int {
	switch s {
	case ServiceElderCare:
		return ElderCareUnitPrice
	case ServiceChildCare:
		return ChildCareUnitPrice
	default:
		return 0
	}
}

// DisplayName returns the name shown in summaries and price lists
func (s ServiceType) DisplayName() string {
	switch s {
	case ServiceElderCare:
		return "Elder Day Care"
	case ServiceChildCare:
		return "Child Day Care"
	default:
		return string(s)
	}
}

// ShortName returns the prefix used in problem messages
func (s ServiceType) ShortName() string {
	switch s {
	case ServiceElderCare:
		return "Elder Care"
	case ServiceChildCare:
		return "Child Care"
	default:
		return string(s)
	}
}

// ParseServiceType converts an external service name to ServiceType.
// Accepts the canonical identifier ("elder_care") and the display name.
func ParseServiceType(value string) (ServiceType, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, s := range AllServices {
		if normalized == string(s) || normalized == strings.ToLower(s.DisplayName()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownService, value)
}

// Order returns the position of the service in AllServices, unknown services sort last
func (s ServiceType) Order() int {
	for i, known := range AllServices {
		if known == s {
			return i
		}
	}
	return len(AllServices)
}
