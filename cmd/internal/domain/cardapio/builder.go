// Package cardapio builds weekly menu skeletons and resolves the recipe and
// ingredient references stored in their slots.
package cardapio

import (
	"time"

	"codcoz/cmd/internal/domain/entity"
	"codcoz/cmd/internal/utils/dates"
)

// Week is the Monday..Friday span a new menu is planned for.
type Week struct {
	Start time.Time // Monday, local midnight
	End   time.Time // Friday, local end of day
	Days  []entity.DayEntry
}

// DaysUntilMonday counts the days from wd to the following Monday.
// A Monday always rolls to the next week.
func DaysUntilMonday(wd time.Weekday) int {
	switch wd {
	case time.Sunday:
		return 1
	case time.Monday:
		return 7
	default:
		return 8 - int(wd)
	}
}

// BuildNextWeek returns the next Monday..Friday after today, in today's
// location, with five empty day entries.
func BuildNextWeek(today time.Time) Week {
	start := dates.StartOfDay(today).AddDate(0, 0, DaysUntilMonday(today.Weekday()))
	end := dates.EndOfDay(start.AddDate(0, 0, entity.DaysPerWeek-1))

	days := make([]entity.DayEntry, entity.DaysPerWeek)
	for i := range days {
		days[i] = entity.DayEntry{
			Weekday: entity.WeekdayLabels[i],
			Date:    start.AddDate(0, 0, i).Format(dates.ISODate),
		}
	}

	return Week{Start: start, End: end, Days: days}
}

// StartKey is the ISO date of the week's Monday.
func (w Week) StartKey() string {
	return w.Start.Format(dates.ISODate)
}

func (w Week) EndKey() string {
	return w.End.Format(dates.ISODate)
}

// DefaultName is the name given to a planned week when none is supplied.
func (w Week) DefaultName() string {
	return "Cardápio " + dates.FormatRange(w.StartKey(), w.EndKey())
}

// Menu turns the week into a menu document ready to be persisted.
func (w Week) Menu(companyID, name string) entity.WeeklyMenu {
	if name == "" {
		name = w.DefaultName()
	}
	return entity.WeeklyMenu{
		CompanyID:   companyID,
		Name:        name,
		StartDate:   w.Start.Format(time.RFC3339),
		EndDate:     w.End.Format(time.RFC3339),
		Periodicity: entity.PeriodicityWeekly,
		Days:        w.Days,
	}
}
