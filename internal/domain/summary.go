package domain

import (
	"fmt"
	"strings"
)

// FormatMoney renders an amount as "Rs. 800.00"
func FormatMoney(amount int) string {
	return fmt.Sprintf("%s %d.00", CurrencySymbol, amount)
}

// RenderSummary renders a pending booking as a markdown summary
func RenderSummary(p *PendingBooking) string {
	var b strings.Builder

	b.WriteString("#### Booking Summary:\n\n")
	for _, detail := range p.Details() {
		dates := make([]string, len(detail.Dates))
		for i, d := range detail.Dates {
			dates[i] = FormatDisplayDate(d)
		}

		fmt.Fprintf(&b, "**%s:**\n", detail.Service.DisplayName())
		fmt.Fprintf(&b, "- Dates: `%s`\n", strings.Join(dates, ", "))
		fmt.Fprintf(&b, "- Weekdays: %d\n", detail.DayCount)
		fmt.Fprintf(&b, "- Cost: %s\n\n", FormatMoney(detail.Cost))
	}
	fmt.Fprintf(&b, "---\n#### Total Amount Payable: %s", FormatMoney(p.TotalCost))

	return b.String()
}
