/*
load.go - Config/Input file loading for the roster CLI

PURPOSE:
  Loads a YAML snapshot (shops, employees, leave, week start) and a
  YAML policy file (Sunday cap flag, gap-filler pass count, late-pass
  offer thresholds and lengths) into roster.Input and roster.Config,
  via viper, so that no employee-ID list is ever a literal in solver
  code. The contract caps and targets are not loaded here; they are
  package constants in roster/employee.go.

SEE ALSO:
  - roster/input.go: the types this package populates
  - cmd/roster: the CLI commands that call LoadInput/LoadConfig
*/
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/rosterforge/engine/roster"
)

var weekdayNames = map[string]time.Weekday{
	"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
	"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
	"sunday": time.Sunday,
}

// fileDayHours is the YAML shape of one weekday's opening window.
type fileDayHours struct {
	Closed bool   `mapstructure:"closed"`
	Open   string `mapstructure:"open"`
	Close  string `mapstructure:"close"`
	AM     int    `mapstructure:"am"`
	PM     int    `mapstructure:"pm"`
}

type fileInterval struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

type fileShop struct {
	ID                 string                    `mapstructure:"id"`
	Name               string                    `mapstructure:"name"`
	Company            string                    `mapstructure:"company"`
	Active             bool                      `mapstructure:"active"`
	Role               string                    `mapstructure:"role"`
	Midpoint           string                    `mapstructure:"midpoint"`
	PrimaryEmployees   []string                  `mapstructure:"primaryEmployees"`
	SecondaryEmployees []string                  `mapstructure:"secondaryEmployees"`
	Hours              map[string]fileDayHours   `mapstructure:"hours"`
	Special            map[string][]fileInterval `mapstructure:"special"`
}

type fileConstraints struct {
	OffDays       []string `mapstructure:"offDays"`
	MorningOnly   bool     `mapstructure:"morningOnly"`
	EveningOnly   bool     `mapstructure:"eveningOnly"`
	EmergencyOnly bool     `mapstructure:"emergencyOnly"`
}

type fileEmployee struct {
	ID               string          `mapstructure:"id"`
	Name             string          `mapstructure:"name"`
	Company          string          `mapstructure:"company"`
	Contract         string          `mapstructure:"contract"`
	Active           bool            `mapstructure:"active"`
	PrimaryShopID    string          `mapstructure:"primaryShopId"`
	SecondaryShopIDs []string        `mapstructure:"secondaryShopIds"`
	Constraints      fileConstraints `mapstructure:"constraints"`
}

type fileLeave struct {
	EmployeeID string `mapstructure:"employeeId"`
	Start      string `mapstructure:"start"`
	End        string `mapstructure:"end"`
	Status     string `mapstructure:"status"`
}

type fileInput struct {
	WeekStart           string              `mapstructure:"weekStart"`
	Shops               []fileShop          `mapstructure:"shops"`
	Employees           []fileEmployee      `mapstructure:"employees"`
	LeaveRequests       []fileLeave         `mapstructure:"leaveRequests"`
	ExcludedEmployeeIDs []string            `mapstructure:"excludedEmployeeIds"`
	AMOnlyEmployeeIDs   []string            `mapstructure:"amOnlyEmployeeIds"`
	FixedDaysOff        map[string][]string `mapstructure:"fixedDaysOff"`
}

// LoadInput reads a roster snapshot from path (YAML, JSON, or TOML;
// viper infers the format from the extension).
func LoadInput(path string) (roster.Input, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return roster.Input{}, fmt.Errorf("config: reading input %s: %w", path, err)
	}

	var f fileInput
	if err := v.Unmarshal(&f); err != nil {
		return roster.Input{}, fmt.Errorf("config: decoding input %s: %w", path, err)
	}

	return convertInput(f)
}

func convertInput(f fileInput) (roster.Input, error) {
	weekStart, err := roster.ParseDate(f.WeekStart)
	if err != nil {
		return roster.Input{}, err
	}

	shops := make([]roster.Shop, 0, len(f.Shops))
	for _, fs := range f.Shops {
		s, err := convertShop(fs)
		if err != nil {
			return roster.Input{}, err
		}
		shops = append(shops, s)
	}

	employees := make([]roster.Employee, 0, len(f.Employees))
	for _, fe := range f.Employees {
		employees = append(employees, convertEmployee(fe))
	}

	leave := make([]roster.LeaveRequest, 0, len(f.LeaveRequests))
	for _, fl := range f.LeaveRequests {
		lr, err := convertLeave(fl)
		if err != nil {
			return roster.Input{}, err
		}
		leave = append(leave, lr)
	}

	excluded := toSet(f.ExcludedEmployeeIDs)
	amOnly := toSet(f.AMOnlyEmployeeIDs)

	fixedDaysOff := make(map[string]map[int]bool, len(f.FixedDaysOff))
	for empID, days := range f.FixedDaysOff {
		set := make(map[int]bool, len(days))
		for _, d := range days {
			wd, ok := weekdayNames[strings.ToLower(d)]
			if !ok {
				return roster.Input{}, fmt.Errorf("config: unknown weekday %q in fixedDaysOff for %s", d, empID)
			}
			set[int(wd)] = true
		}
		fixedDaysOff[empID] = set
	}

	return roster.Input{
		WeekStart:           weekStart,
		Shops:               shops,
		Employees:           employees,
		LeaveRequests:       leave,
		ExcludedEmployeeIDs: excluded,
		AMOnlyEmployeeIDs:   amOnly,
		FixedDaysOff:        fixedDaysOff,
	}, nil
}

func convertShop(fs fileShop) (roster.Shop, error) {
	midpoint, err := parseClock(fs.Midpoint)
	if err != nil {
		return roster.Shop{}, fmt.Errorf("config: shop %s: %w", fs.ID, err)
	}

	hours := make(map[time.Weekday]roster.DayHours, len(fs.Hours))
	for day, fdh := range fs.Hours {
		wd, ok := weekdayNames[strings.ToLower(day)]
		if !ok {
			return roster.Shop{}, fmt.Errorf("config: shop %s: unknown weekday %q", fs.ID, day)
		}
		if fdh.Closed {
			hours[wd] = roster.DayHours{Closed: true}
			continue
		}
		open, err := parseClock(fdh.Open)
		if err != nil {
			return roster.Shop{}, fmt.Errorf("config: shop %s %s: %w", fs.ID, day, err)
		}
		closeTime, err := parseClock(fdh.Close)
		if err != nil {
			return roster.Shop{}, fmt.Errorf("config: shop %s %s: %w", fs.ID, day, err)
		}
		hours[wd] = roster.DayHours{
			Open: open, Close: closeTime,
			Demand: roster.Demand{AM: fdh.AM, PM: fdh.PM},
		}
	}

	special := make(map[time.Weekday][]roster.SpecialShift, len(fs.Special))
	for day, intervals := range fs.Special {
		wd, ok := weekdayNames[strings.ToLower(day)]
		if !ok {
			return roster.Shop{}, fmt.Errorf("config: shop %s: unknown weekday %q in special", fs.ID, day)
		}
		for _, iv := range intervals {
			start, err := parseClock(iv.Start)
			if err != nil {
				return roster.Shop{}, err
			}
			end, err := parseClock(iv.End)
			if err != nil {
				return roster.Shop{}, err
			}
			special[wd] = append(special[wd], roster.SpecialShift{Start: start, End: end})
		}
	}

	return roster.Shop{
		ID:                 fs.ID,
		Name:               fs.Name,
		Company:            roster.Company(fs.Company),
		Active:             fs.Active,
		Role:               roster.RosterRole(fs.Role),
		Hours:              hours,
		Special:            special,
		PrimaryEmployees:   fs.PrimaryEmployees,
		SecondaryEmployees: fs.SecondaryEmployees,
		Midpoint:           midpoint,
	}, nil
}

func convertEmployee(fe fileEmployee) roster.Employee {
	offDays := make(map[time.Weekday]bool, len(fe.Constraints.OffDays))
	for _, d := range fe.Constraints.OffDays {
		if wd, ok := weekdayNames[strings.ToLower(d)]; ok {
			offDays[wd] = true
		}
	}

	contract := roster.FullTime
	if strings.EqualFold(fe.Contract, "part-time") {
		contract = roster.PartTime
	}

	return roster.Employee{
		ID:               fe.ID,
		Name:             fe.Name,
		Company:          roster.Company(fe.Company),
		Contract:         contract,
		PrimaryShopID:    fe.PrimaryShopID,
		SecondaryShopIDs: fe.SecondaryShopIDs,
		Active:           fe.Active,
		Constraints: roster.PersonalConstraints{
			OffDays:       offDays,
			MorningOnly:   fe.Constraints.MorningOnly,
			EveningOnly:   fe.Constraints.EveningOnly,
			EmergencyOnly: fe.Constraints.EmergencyOnly,
		},
	}
}

func convertLeave(fl fileLeave) (roster.LeaveRequest, error) {
	start, err := roster.ParseDate(fl.Start)
	if err != nil {
		return roster.LeaveRequest{}, err
	}
	end, err := roster.ParseDate(fl.End)
	if err != nil {
		return roster.LeaveRequest{}, err
	}
	return roster.LeaveRequest{
		EmployeeID: fl.EmployeeID,
		Start:      start,
		End:        end,
		Status:     roster.LeaveStatus(fl.Status),
	}, nil
}

func parseClock(s string) (roster.ClockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	return roster.NewClockTime(hour, minute), nil
}

func toSet(ids []string) map[string]bool {
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		out[id] = true
	}
	return out
}

// LoadConfig reads the tunable policy file from path, falling back to
// roster.DefaultConfig() for any field the file omits.
func LoadConfig(path string) (roster.Config, error) {
	cfg := roster.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return roster.Config{}, fmt.Errorf("config: reading config %s: %w", path, err)
	}

	if v.IsSet("sundayCountsTowardCap") {
		cfg.SundayCountsTowardCap = v.GetBool("sundayCountsTowardCap")
	}
	if v.IsSet("gapFillerMaxPasses") {
		cfg.GapFillerMaxPasses = v.GetInt("gapFillerMaxPasses")
	}
	if v.IsSet("sundayOfferThresholdHours") {
		cfg.SundayOfferThreshold = roster.HoursOf(v.GetFloat64("sundayOfferThresholdHours"))
	}
	if v.IsSet("sundayOfferHours") {
		cfg.SundayOfferHours = roster.HoursOf(v.GetFloat64("sundayOfferHours"))
	}
	if v.IsSet("saturdayOfferThresholdHours") {
		cfg.SaturdayOfferThreshold = roster.HoursOf(v.GetFloat64("saturdayOfferThresholdHours"))
	}
	if v.IsSet("saturdayOfferHours") {
		cfg.SaturdayOfferHours = roster.HoursOf(v.GetFloat64("saturdayOfferHours"))
	}

	return cfg, nil
}
