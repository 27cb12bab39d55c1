// Package academic derives semester buckets, academic year labels and term
// windows from calendar dates.
package academic

import (
	"fmt"
	"time"
)

// Semester identifies one of the three semesters of an academic year.
type Semester string

const (
	SemesterFirst  Semester = "1st"
	SemesterSecond Semester = "2nd"
	SemesterSummer Semester = "Summer"
)

// IsValid reports whether s is a known semester label.
func (s Semester) IsValid() bool {
	switch s {
	case SemesterFirst, SemesterSecond, SemesterSummer:
		return true
	}
	return false
}

// Term timing constants. Historical revisions of the fee schedule disagreed
// on the term length (150 vs 180 days) and on whether the due date was the
// term end; the current schedule is 180 days with fees due 30 days in.
const (
	TermDuration = 180 * 24 * time.Hour
	DueOffset    = 30 * 24 * time.Hour
)

// SemesterFor classifies a date into a semester bucket: June through October
// is the 1st semester, November through March the 2nd, April and May Summer.
func SemesterFor(date time.Time) Semester {
	month := date.Month()
	switch {
	case month >= time.June && month <= time.October:
		return SemesterFirst
	case month >= time.November || month <= time.March:
		return SemesterSecond
	default:
		return SemesterSummer
	}
}

// AcademicYearFor returns the "YYYY-YYYY+1" label for the school year the
// date falls in. The label is always anchored on the calendar year of the
// date itself, matching how batches are recorded.
func AcademicYearFor(date time.Time) string {
	year := date.Year()
	return fmt.Sprintf("%d-%d", year, year+1)
}

// TermWindow is the derived fee period for one semester.
type TermWindow struct {
	Semester     Semester
	AcademicYear string
	Start        time.Time
	End          time.Time
	Due          time.Time
}

// TermWindowFor derives the term window that contains the given date. The
// term starts on the date itself, runs for TermDuration and fees fall due
// DueOffset after the start.
func TermWindowFor(date time.Time) TermWindow {
	return TermWindow{
		Semester:     SemesterFor(date),
		AcademicYear: AcademicYearFor(date),
		Start:        date,
		End:          date.Add(TermDuration),
		Due:          date.Add(DueOffset),
	}
}

// SameTerm reports whether two (semester, academic year) pairs identify the
// same fee period.
func SameTerm(semA Semester, yearA string, semB Semester, yearB string) bool {
	return semA == semB && yearA == yearB
}
