package domain

// Capacity and pricing constants
const (
	// MaxCapacity максимальное количество бронирований одной услуги на одну дату
	MaxCapacity = 25

	ElderCareUnitPrice = 800
	ChildCareUnitPrice = 600

	CurrencySymbol = "Rs."
	CurrencyCode   = "INR"
)

// Date format constants
const (
	DateFormat        = "2006-01-02"       // YYYY-MM-DD
	DisplayDateFormat = "2006-01-02 (Mon)" // YYYY-MM-DD (Tue)
)
