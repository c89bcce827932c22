package attempt_booking

import (
	"sort"

	"github.com/m04kA/SMC-DayCareBooking/internal/domain"
)

// orderSelections возвращает выбор в каноническом порядке услуг и ошибки повторного выбора
func orderSelections(selections []Selection) ([]Selection, domain.Problems) {
	ordered := make([]Selection, 0, len(selections))
	var problems domain.Problems

	seen := make(map[domain.ServiceType]struct{}, len(selections))
	for _, s := range selections {
		if _, ok := seen[s.Service]; ok {
			problems = append(problems, &domain.ServiceError{Service: s.Service, Err: domain.ErrDuplicateService})
			continue
		}
		seen[s.Service] = struct{}{}
		ordered = append(ordered, s)
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Service.Order() < ordered[j].Service.Order()
	})

	return ordered, problems
}
