package roster_test

import (
	"time"

	"github.com/rosterforge/engine/roster"
)

// =============================================================================
// TEST FIXTURES - builder helpers for shops, employees, and input snapshots
// =============================================================================

func mondayWeekStart() roster.Date {
	return roster.NewDate(2026, time.January, 5) // a Monday
}

func allWeekOpen(am, pm int, open, closeTime roster.ClockTime) map[time.Weekday]roster.DayHours {
	days := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make(map[time.Weekday]roster.DayHours, len(days))
	for _, d := range days {
		out[d] = roster.DayHours{Open: open, Close: closeTime, Demand: roster.Demand{AM: am, PM: pm}}
	}
	return out
}

// onlyMondayOpen builds an hours map where Monday has the given demand
// and every other day is closed (zero demand), matching fixtures that
// want a single isolated day under test.
func onlyMondayOpen(am, pm int, open, closeTime roster.ClockTime) map[time.Weekday]roster.DayHours {
	days := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	out := make(map[time.Weekday]roster.DayHours, len(days))
	for _, d := range days {
		if d == time.Monday {
			out[d] = roster.DayHours{Open: open, Close: closeTime, Demand: roster.Demand{AM: am, PM: pm}}
			continue
		}
		out[d] = roster.DayHours{Closed: true}
	}
	return out
}

func createShop(id string, company roster.Company, role roster.RosterRole, hours map[time.Weekday]roster.DayHours) roster.Shop {
	return roster.Shop{
		ID:       id,
		Name:     id,
		Company:  company,
		Active:   true,
		Role:     role,
		Hours:    hours,
		Midpoint: roster.NewClockTime(14, 0),
	}
}

func createEmployee(id string, company roster.Company, contract roster.ContractType) roster.Employee {
	return roster.Employee{
		ID:       id,
		Name:     id,
		Company:  company,
		Contract: contract,
		Active:   true,
	}
}

func baseInput(shops []roster.Shop, employees []roster.Employee) roster.Input {
	return roster.Input{
		WeekStart: mondayWeekStart(),
		Shops:     shops,
		Employees: employees,
	}
}
