package hijri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLeapYear(t *testing.T) {
	leap := map[int]bool{
		2: true, 5: true, 7: true, 10: true, 13: true, 16: true,
		18: true, 21: true, 24: true, 26: true, 29: true,
	}
	// 1410 mod 30 == 0, so this walks a full cycle.
	for r := 0; r < 30; r++ {
		assert.Equal(t, leap[r], IsLeapYear(1410+r), "year %d", 1410+r)
	}
	assert.True(t, IsLeapYear(1431))  // 1431 mod 30 = 21
	assert.False(t, IsLeapYear(1432)) // 1432 mod 30 = 22
}

func TestDaysInMonth(t *testing.T) {
	for m := 1; m <= 11; m += 2 {
		assert.Equal(t, 30, DaysInMonth(1432, m), "month %d", m)
	}
	for m := 2; m <= 10; m += 2 {
		assert.Equal(t, 29, DaysInMonth(1432, m), "month %d", m)
	}
	assert.Equal(t, 30, DaysInMonth(1431, 12), "leap year")
	assert.Equal(t, 29, DaysInMonth(1432, 12), "common year")
}

func TestDaysInYear(t *testing.T) {
	assert.Equal(t, 355, DaysInYear(1431))
	assert.Equal(t, 354, DaysInYear(1432))
}

func TestDaysSoFar(t *testing.T) {
	assert.Equal(t, 0, DaysSoFar(1432, 0))
	assert.Equal(t, 30, DaysSoFar(1432, 1))
	assert.Equal(t, 177, DaysSoFar(1432, 6))
	assert.Equal(t, 354, DaysSoFar(1432, 12))
	assert.Equal(t, 355, DaysSoFar(1431, 12))
}

func TestEpoch(t *testing.T) {
	assert.Equal(t, IslamicEpoch, ToJulian(Date{Year: 1, Month: 1, Day: 1}))
	// 1 Muharram 1 AH was a Friday.
	assert.Equal(t, 6, MonthStartWeekday(1, 1))
	assert.Equal(t, "al-Jumu'ah", WeekdayName(6))
}

func TestGoldenFixture(t *testing.T) {
	// 27 Rajab 1432 AH = 29 June 2011 CE, JDN 2455741.5.
	h := Date{Year: 1432, Month: 7, Day: 27}
	assert.Equal(t, 2455741.5, ToJulian(h))
	assert.Equal(t, GregorianDate{Year: 2011, Month: 6, Day: 29}, ToGregorian(h))
	assert.Equal(t, h, FromGregorian(GregorianDate{Year: 2011, Month: 6, Day: 29}))

	assert.Equal(t, Date{Year: 1432, Month: 4, Day: 16},
		FromGregorian(GregorianDate{Year: 2011, Month: 3, Day: 22}))
}

func TestRoundTripJulian(t *testing.T) {
	for year := 1; year <= 2000; year++ {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= DaysInMonth(year, month); day++ {
				d := Date{Year: year, Month: month, Day: day}
				if got := FromJulian(ToJulian(d)); got != d {
					t.Fatalf("round trip %+v -> %+v", d, got)
				}
			}
		}
	}
}

func TestFromJulianMonthClamp(t *testing.T) {
	// The last day of a leap year lands in month 13 before clamping.
	d := Date{Year: 1431, Month: 12, Day: 30}
	require.True(t, IsLeapYear(1431))
	assert.Equal(t, d, FromJulian(ToJulian(d)))
}

func TestWeekday(t *testing.T) {
	// 29 June 2011 was a Wednesday.
	assert.Equal(t, 4, Weekday(2455741.5))
	assert.Equal(t, "al-Arbi'a", WeekdayName(4))
}

func TestMonthStartWeekday(t *testing.T) {
	// 1 Rajab 1432 AH = 3 June 2011 CE, a Friday.
	assert.Equal(t, 6, MonthStartWeekday(1432, 7))
}

func TestAddDays(t *testing.T) {
	t.Run("RollsMonth", func(t *testing.T) {
		got := Date{Year: 1432, Month: 2, Day: 29}.AddDays(1)
		assert.Equal(t, Date{Year: 1432, Month: 3, Day: 1}, got)
	})
	t.Run("Keeps29InLongMonth", func(t *testing.T) {
		got := Date{Year: 1432, Month: 1, Day: 29}.AddDays(1)
		assert.Equal(t, Date{Year: 1432, Month: 1, Day: 30}, got)
	})
	t.Run("RollsYear", func(t *testing.T) {
		got := Date{Year: 1432, Month: 12, Day: 29}.AddDays(1)
		assert.Equal(t, Date{Year: 1433, Month: 1, Day: 1}, got)
	})
	t.Run("LeapYearEnd", func(t *testing.T) {
		d := Date{Year: 1431, Month: 12, Day: 29}
		assert.Equal(t, Date{Year: 1431, Month: 12, Day: 30}, d.AddDays(1))
		assert.Equal(t, Date{Year: 1432, Month: 1, Day: 1}, d.AddDays(2))
	})
	t.Run("WholeYear", func(t *testing.T) {
		got := Date{Year: 1432, Month: 1, Day: 1}.AddDays(DaysInYear(1432))
		assert.Equal(t, Date{Year: 1433, Month: 1, Day: 1}, got)
	})
	t.Run("NonPositive", func(t *testing.T) {
		d := Date{Year: 1432, Month: 7, Day: 27}
		assert.Equal(t, d, d.AddDays(0))
		assert.Equal(t, d, d.AddDays(-5))
	})
}

func TestNameTables(t *testing.T) {
	assert.Equal(t, "Muharram", MonthName(1))
	assert.Equal(t, "Ramadan", MonthName(9))
	assert.Equal(t, "Dhu al-Hijjah", MonthName(12))
	assert.Equal(t, "al-Sabt", WeekdayName(0))

	months := MonthNames()
	months[0] = "mutated"
	assert.Equal(t, "Muharram", MonthName(1), "table must be a copy")
}
