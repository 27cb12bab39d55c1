package academic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestSemesterFor(t *testing.T) {
	tests := []struct {
		month time.Month
		want  Semester
	}{
		{time.January, SemesterSecond},
		{time.February, SemesterSecond},
		{time.March, SemesterSecond},
		{time.April, SemesterSummer},
		{time.May, SemesterSummer},
		{time.June, SemesterFirst},
		{time.July, SemesterFirst},
		{time.August, SemesterFirst},
		{time.September, SemesterFirst},
		{time.October, SemesterFirst},
		{time.November, SemesterSecond},
		{time.December, SemesterSecond},
	}

	for _, tt := range tests {
		t.Run(tt.month.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, SemesterFor(date(2024, tt.month, 15)))
		})
	}
}

func TestAcademicYearFor(t *testing.T) {
	assert.Equal(t, "2024-2025", AcademicYearFor(date(2024, time.September, 1)))
	// The label is anchored on the calendar year even in the January leg of
	// the 2nd semester.
	assert.Equal(t, "2025-2026", AcademicYearFor(date(2025, time.January, 15)))
}

func TestTermWindowFor(t *testing.T) {
	start := date(2024, time.July, 1)
	window := TermWindowFor(start)

	assert.Equal(t, SemesterFirst, window.Semester)
	assert.Equal(t, "2024-2025", window.AcademicYear)
	assert.Equal(t, start, window.Start)
	assert.Equal(t, start.AddDate(0, 0, 180), window.End)
	assert.Equal(t, start.AddDate(0, 0, 30), window.Due)
}

func TestSemesterIsValid(t *testing.T) {
	assert.True(t, SemesterFirst.IsValid())
	assert.True(t, SemesterSecond.IsValid())
	assert.True(t, SemesterSummer.IsValid())
	assert.False(t, Semester("3rd").IsValid())
	assert.False(t, Semester("").IsValid())
}

func TestSameTerm(t *testing.T) {
	assert.True(t, SameTerm(SemesterFirst, "2024-2025", SemesterFirst, "2024-2025"))
	assert.False(t, SameTerm(SemesterFirst, "2024-2025", SemesterSecond, "2024-2025"))
	assert.False(t, SameTerm(SemesterFirst, "2024-2025", SemesterFirst, "2025-2026"))
}
