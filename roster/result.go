/*
result.go - Result builder

PURPOSE:
  Assembles the output record: shift list, unfilled slots, per-employee
  summaries, per-shop coverage, and the validation report. Runs once,
  after phase 10, and never again — the result is an opaque value from
  here on (the export renderers read it but never mutate it).

SEE ALSO:
  - validate.go: builds the Validation sub-record this assembles
  - export/: reads Result to render a workbook and PDF timecards
*/
package roster

// Result is the solver's complete output envelope.
type Result struct {
	RunID     string
	WeekStart Date
	WeekEnd   Date

	Summary    Summary
	Data       ResultData
	Validation Validation
}

// Summary is the headline roll-up.
type Summary struct {
	TotalShifts       int
	TotalHours        Hours
	CoveragePercent   float64
	EmployeesAtTarget int
	EmployeesUnder    int
	EmployeesOver     int
	UnfilledSlotCount int
}

// ResultData is the detail-level output.
type ResultData struct {
	Shifts            []Shift
	UnfilledSlots     []UnfilledSlot
	EmployeeSummaries []EmployeeSummary
	ShopCoverage      []ShopCoverage
}

// UnfilledSlot is one (shop, day) cell with demand remaining after phase 9.
type UnfilledSlot struct {
	ShopID string
	Date   Date
	AM     int
	PM     int
}

// EmployeeSummary is one employee's post-solve roll-up.
type EmployeeSummary struct {
	EmployeeID   string
	TotalHours   Hours
	WeekdayHours Hours
	SundayHours  Hours
	ShiftCount   int
	DaysWorked   int
}

// ShopCoverage is one shop's filled/declared ratio across the week.
type ShopCoverage struct {
	ShopID        string
	DeclaredSlots int
	FilledSlots   int
	CoverageRatio float64
}

func (e *Engine) buildResult() Result {
	cells := e.slots.AllCells(e.input.Shops, e.week)

	var unfilled []UnfilledSlot
	declaredByShop := make(map[string]int)
	filledByShop := make(map[string]int)
	totalDeclared, totalFilled := 0, 0

	for _, cell := range cells {
		declared := e.slots.Declared(cell.ShopID, cell.Day)
		remaining := e.slots.Remaining(cell.ShopID, cell.Day)

		declaredCount := declared.AM + declared.PM
		filledCount := declaredCount - (remaining.AM + remaining.PM)
		if filledCount < 0 {
			filledCount = 0 // over-staffing never counts as "negative unfilled"
		}

		declaredByShop[cell.ShopID] += declaredCount
		filledByShop[cell.ShopID] += filledCount
		totalDeclared += declaredCount
		totalFilled += filledCount

		if remaining.AM > 0 || remaining.PM > 0 {
			unfilled = append(unfilled, UnfilledSlot{
				ShopID: cell.ShopID, Date: cell.Day, AM: remaining.AM, PM: remaining.PM,
			})
			e.log.SlotUnfilled(cell.ShopID, cell.Day, remaining.AM, remaining.PM)
		}
	}

	var shopCoverage []ShopCoverage
	for _, s := range e.input.Shops {
		declared, ok := declaredByShop[s.ID]
		if !ok {
			continue
		}
		filled := filledByShop[s.ID]
		ratio := 1.0
		if declared > 0 {
			ratio = float64(filled) / float64(declared)
		}
		shopCoverage = append(shopCoverage, ShopCoverage{
			ShopID: s.ID, DeclaredSlots: declared, FilledSlots: filled, CoverageRatio: ratio,
		})
	}

	var employeeSummaries []EmployeeSummary
	totalHours := Zero
	atTarget, under, over := 0, 0, 0
	for _, emp := range e.input.Employees {
		shifts := e.issuer.ShiftsFor(emp.ID)
		if len(shifts) == 0 {
			continue
		}
		days := make(map[Date]bool)
		for _, s := range shifts {
			days[s.Date] = true
		}

		weekday := e.ledger.WeekdayOf(emp.ID)
		total := e.ledger.TotalOf(emp.ID)
		totalHours = totalHours.Add(total)

		employeeSummaries = append(employeeSummaries, EmployeeSummary{
			EmployeeID:   emp.ID,
			TotalHours:   total,
			WeekdayHours: weekday,
			SundayHours:  e.ledger.SundayOf(emp.ID),
			ShiftCount:   len(shifts),
			DaysWorked:   len(days),
		})

		switch {
		case emp.Contract == FullTime && weekday.LessThan(HoursOf(38)):
			under++
		case emp.Contract == FullTime && weekday.GreaterThan(CapFor(FullTime)):
			over++
		case emp.Contract == PartTime && weekday.GreaterThan(CapPartTime):
			over++
		default:
			atTarget++
		}
	}

	coveragePercent := 100.0
	if totalDeclared > 0 {
		coveragePercent = 100.0 * float64(totalFilled) / float64(totalDeclared)
	}

	summary := Summary{
		TotalShifts:       len(e.issuer.Shifts()),
		TotalHours:        totalHours,
		CoveragePercent:   coveragePercent,
		EmployeesAtTarget: atTarget,
		EmployeesUnder:    under,
		EmployeesOver:     over,
		UnfilledSlotCount: len(unfilled),
	}

	data := ResultData{
		Shifts:            e.issuer.Shifts(),
		UnfilledSlots:     unfilled,
		EmployeeSummaries: employeeSummaries,
		ShopCoverage:      shopCoverage,
	}

	return Result{
		RunID:      e.runID,
		WeekStart:  e.week.Start,
		WeekEnd:    e.week.End(),
		Summary:    summary,
		Data:       data,
		Validation: e.validate(unfilled),
	}
}
