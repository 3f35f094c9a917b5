// Package hijri converts dates between the civil (tabular) Hijri calendar,
// the proleptic Gregorian calendar, and Julian Day Numbers.
//
// The Hijri side uses the fixed 30-year arithmetic cycle with 11 leap years,
// not lunar observation, so dates may differ by one day from observation-based
// calendars. All conversions pivot through the Julian Day Number, a float64
// where N.5 marks local midnight.
package hijri

import "math"

// Julian Day Numbers of the first day of each calendar.
const (
	IslamicEpoch   = 1948439.5 // 1 Muharram 1 AH
	GregorianEpoch = 1721425.5 // 1 January 1 CE
)

// Date is a civil Hijri calendar date. The zero value is not a valid date;
// construct with Year >= 1, Month in 1..12, Day in 1..DaysInMonth. Values from
// untrusted input must go through Validate before conversion.
type Date struct {
	Year  int
	Month int
	Day   int
}

var monthNames = [12]string{
	"Muharram", "Safar", "Rabi' al-Awwal", "Rabi' al-Thani",
	"Jumada al-Awwal", "Jumada al-Thani", "Rajab", "Sha'ban",
	"Ramadan", "Shawwal", "Dhu al-Qi'dah", "Dhu al-Hijjah",
}

// Saturday first, matching the Weekday anchor.
var weekdayNames = [7]string{
	"al-Sabt", "al-Ahad", "al-Ithnayn", "al-Thulatha",
	"al-Arbi'a", "al-Khamis", "al-Jumu'ah",
}

var leapResidues = []int{2, 5, 7, 10, 13, 16, 18, 21, 24, 26, 29}

// MonthName returns the name of Hijri month m (1..12).
func MonthName(m int) string {
	return monthNames[m-1]
}

// WeekdayName returns the name of weekday w (0=Saturday .. 6=Friday).
func WeekdayName(w int) string {
	return weekdayNames[w]
}

// MonthNames returns a copy of the month-name table, index 0 = Muharram.
func MonthNames() [12]string {
	return monthNames
}

// WeekdayNames returns a copy of the weekday-name table, index 0 = Saturday.
func WeekdayNames() [7]string {
	return weekdayNames
}

// IsLeapYear reports whether Hijri year y has 355 days under the 30-year cycle.
func IsLeapYear(year int) bool {
	r := year % 30
	for _, v := range leapResidues {
		if r == v {
			return true
		}
	}
	return false
}

// DaysInMonth returns the length of the given Hijri month: 30 for odd months,
// 29 for even months, except month 12 which has 30 days in a leap year.
func DaysInMonth(year, month int) int {
	if month%2 == 1 || (month == 12 && IsLeapYear(year)) {
		return 30
	}
	return 29
}

// DaysInYear returns 355 for leap years, 354 otherwise.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 355
	}
	return 354
}

// DaysSoFar returns the number of days in months 1..month of the given year,
// i.e. the days elapsed before the first of month+1.
func DaysSoFar(year, month int) int {
	days := 0
	for m := 1; m <= month; m++ {
		days += DaysInMonth(year, m)
	}
	return days
}

// ToJulian returns the Julian Day Number of d. No validation is performed;
// out-of-range fields yield a nonsensical but well-defined result.
func ToJulian(d Date) float64 {
	return float64(d.Day) +
		math.Ceil(29.5*float64(d.Month-1)) +
		float64(d.Year-1)*354 +
		math.Floor(float64(3+11*d.Year)/30) +
		IslamicEpoch - 1
}

// FromJulian returns the Hijri date containing the given Julian Day Number.
// The month is clamped to 12 to absorb rounding at year boundaries.
func FromJulian(jdn float64) Date {
	jdn = math.Floor(jdn) + 0.5
	year := int(math.Floor((30*(jdn-IslamicEpoch) + 10646) / 10631))
	month := int(math.Ceil((jdn-(29+ToJulian(Date{Year: year, Month: 1, Day: 1})))/29.5)) + 1
	if month > 12 {
		month = 12
	}
	day := int(jdn - ToJulian(Date{Year: year, Month: month, Day: 1}) + 1)
	return Date{Year: year, Month: month, Day: day}
}

// FromGregorian converts a Gregorian date to Hijri.
func FromGregorian(g GregorianDate) Date {
	return FromJulian(GregorianToJulian(g))
}

// ToGregorian converts a Hijri date to Gregorian.
func ToGregorian(d Date) GregorianDate {
	return JulianToGregorian(ToJulian(d))
}

// Weekday returns the day of the week containing the given Julian Day Number,
// 0=Saturday .. 6=Friday.
func Weekday(jdn float64) int {
	w := int(math.Mod(math.Floor(jdn+1.5), 7)) // 0=Sunday
	return (w + 1) % 7
}

// MonthStartWeekday returns the weekday (0=Saturday .. 6=Friday) of the first
// day of the given Hijri month, derived from the Gregorian weekday of
// 1 Muharram and stepped forward through the preceding months.
func MonthStartWeekday(year, month int) int {
	jdn := GregorianToJulian(ToGregorian(Date{Year: year, Month: 1, Day: 1}))
	w := Weekday(jdn)
	for i := 0; i < DaysSoFar(year, month-1); i++ {
		w++
		if w == 7 {
			w = 0
		}
	}
	return w
}

// AddDays returns the date n days after d, stepping one day at a time and
// rolling month and year at their boundaries. A day only rolls over once it
// exceeds the month's actual length. n <= 0 returns d unchanged.
func (d Date) AddDays(n int) Date {
	for i := 0; i < n; i++ {
		d.Day++
		if d.Day > DaysInMonth(d.Year, d.Month) {
			d.Day = 1
			d.Month++
			if d.Month > 12 {
				d.Month = 1
				d.Year++
			}
		}
	}
	return d
}
