package hijri

import "math"

// GregorianDate is a proleptic Gregorian calendar date.
type GregorianDate struct {
	Year  int
	Month int
	Day   int
}

var gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsGregorianLeapYear reports whether year is a leap year under the proleptic
// Gregorian rule.
func IsGregorianLeapYear(year int) bool {
	return year%4 == 0 && !(year%100 == 0 && year%400 != 0)
}

// GregorianDaysInMonth returns the length of the given Gregorian month.
func GregorianDaysInMonth(year, month int) int {
	if month == 2 && IsGregorianLeapYear(year) {
		return 29
	}
	return gregorianMonthDays[month-1]
}

// GregorianToJulian returns the Julian Day Number of g. No validation is
// performed.
func GregorianToJulian(g GregorianDate) float64 {
	var adj float64
	if g.Month > 2 {
		if IsGregorianLeapYear(g.Year) {
			adj = -1
		} else {
			adj = -2
		}
	}
	return GregorianEpoch - 1 +
		365*float64(g.Year-1) +
		math.Floor(float64(g.Year-1)/4) -
		math.Floor(float64(g.Year-1)/100) +
		math.Floor(float64(g.Year-1)/400) +
		math.Floor(float64(367*g.Month-362)/12) +
		adj +
		float64(g.Day)
}

// JulianToGregorian returns the Gregorian date containing the given Julian Day
// Number. It is the exact inverse of GregorianToJulian for valid dates.
func JulianToGregorian(jdn float64) GregorianDate {
	wjd := math.Floor(jdn-0.5) + 0.5
	depoch := wjd - GregorianEpoch
	quadricent := math.Floor(depoch / 146097)
	dqc := math.Mod(depoch, 146097)
	cent := math.Floor(dqc / 36524)
	dcent := math.Mod(dqc, 36524)
	quad := math.Floor(dcent / 1461)
	dquad := math.Mod(dcent, 1461)
	yindex := math.Floor(dquad / 365)
	year := int(quadricent*400 + cent*100 + quad*4 + yindex)
	if !(cent == 4 || yindex == 4) {
		year++
	}
	yearday := wjd - GregorianToJulian(GregorianDate{Year: year, Month: 1, Day: 1})
	var leapadj float64
	if wjd >= GregorianToJulian(GregorianDate{Year: year, Month: 3, Day: 1}) {
		if IsGregorianLeapYear(year) {
			leapadj = 1
		} else {
			leapadj = 2
		}
	}
	month := int(math.Floor(((yearday+leapadj)*12 + 373) / 367))
	day := int(wjd - GregorianToJulian(GregorianDate{Year: year, Month: month, Day: 1}) + 1)
	return GregorianDate{Year: year, Month: month, Day: day}
}
