// Package timeseries slices annual simulation results into timesteps
// and exports image sequences and GIF animations from them.
package timeseries

import (
	"fmt"
	"time"
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Period is a slice of the year: a date range plus a daily hour
// range. Hours run 0 to 23 and the result timesteps cover the hour
// range on every day of the date range.
type Period struct {
	StMonth, StDay, StHour    int
	EndMonth, EndDay, EndHour int
}

// NewPeriod validates and builds an analysis period.
func NewPeriod(stMonth, stDay, stHour, endMonth, endDay, endHour int) (Period, error) {
	p := Period{stMonth, stDay, stHour, endMonth, endDay, endHour}
	check := func(name string, v, min, max int) error {
		if v < min || v > max {
			return fmt.Errorf("timeseries: %s must be between %d and %d; got %d", name, min, max, v)
		}
		return nil
	}
	for _, c := range []struct {
		name     string
		v, lo, hi int
	}{
		{"start month", stMonth, 1, 12},
		{"end month", endMonth, 1, 12},
		{"start day", stDay, 1, 31},
		{"end day", endDay, 1, 31},
		{"start hour", stHour, 0, 23},
		{"end hour", endHour, 0, 23},
	} {
		if err := check(c.name, c.v, c.lo, c.hi); err != nil {
			return Period{}, err
		}
	}
	if stDay > daysPerMonth[stMonth-1] {
		return Period{}, fmt.Errorf("timeseries: month %d has no day %d", stMonth, stDay)
	}
	if endDay > daysPerMonth[endMonth-1] {
		return Period{}, fmt.Errorf("timeseries: month %d has no day %d", endMonth, endDay)
	}
	if p.startDOY() > p.endDOY() {
		return Period{}, fmt.Errorf("timeseries: the period ends before it starts")
	}
	if stHour > endHour {
		return Period{}, fmt.Errorf("timeseries: start hour %d is after end hour %d", stHour, endHour)
	}
	return p, nil
}

func dayOfYear(month, day int) int {
	doy := day - 1
	for m := 0; m < month-1; m++ {
		doy += daysPerMonth[m]
	}
	return doy
}

func (p Period) startDOY() int { return dayOfYear(p.StMonth, p.StDay) }
func (p Period) endDOY() int   { return dayOfYear(p.EndMonth, p.EndDay) }

// Hoys lists the hours of the year the period covers, in order.
// Annual result files carry 8760 columns, one per hour of a non leap
// year, and these values index into them.
func (p Period) Hoys() []int {
	var hoys []int
	for doy := p.startDOY(); doy <= p.endDOY(); doy++ {
		for hour := p.StHour; hour <= p.EndHour; hour++ {
			hoys = append(hoys, doy*24+hour)
		}
	}
	return hoys
}

// HoyLabel renders an hour of the year as a readable date, e.g.
// "21 Jun 12:00".
func HoyLabel(hoy int) string {
	doy := hoy / 24
	hour := hoy % 24
	t := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, doy)
	return fmt.Sprintf("%d %s %02d:00", t.Day(), t.Month().String()[:3], hour)
}
