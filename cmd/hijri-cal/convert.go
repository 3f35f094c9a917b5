package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/manwar/Calendar-Hijri/hijri"
)

func newConvertCmd() *cobra.Command {
	var gregorian bool
	cmd := &cobra.Command{
		Use:   "convert <date>",
		Short: "Convert a date between the Hijri and Gregorian calendars",
		Long: "Convert a Hijri date to Gregorian, or the reverse with --gregorian.\n" +
			"Accepted formats: YYYY/MM/DD, YYYY-MM-DD, YYYY.MM.DD.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], gregorian)
		},
	}
	cmd.Flags().BoolVarP(&gregorian, "gregorian", "g", false, "treat the input as Gregorian and convert to Hijri")
	return cmd
}

func parseDate(s string) (int, int, int, error) {
	s = strings.ReplaceAll(s, "-", "/")
	s = strings.ReplaceAll(s, ".", "/")
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date format, expected YYYY/MM/DD, YYYY-MM-DD, or YYYY.MM.DD")
	}
	year, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	day, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, fmt.Errorf("invalid date values")
	}
	return year, month, day, nil
}

func runConvert(cmd *cobra.Command, arg string, gregorian bool) error {
	year, month, day, err := parseDate(arg)
	if err != nil {
		return err
	}
	if gregorian {
		if month < 1 || month > 12 || day < 1 || day > hijri.GregorianDaysInMonth(year, month) {
			return fmt.Errorf("invalid Gregorian date %q", arg)
		}
		g := hijri.GregorianDate{Year: year, Month: month, Day: day}
		h := hijri.FromGregorian(g)
		w := hijri.Weekday(hijri.GregorianToJulian(g))
		cmd.Printf("Gregorian: %04d/%02d/%02d\n", g.Year, g.Month, g.Day)
		cmd.Printf("Hijri:     %04d/%02d/%02d - %d %s %d AH\n",
			h.Year, h.Month, h.Day, h.Day, hijri.MonthName(h.Month), h.Year)
		cmd.Printf("Weekday:   %s\n", hijri.WeekdayName(w))
		return nil
	}
	if err := hijri.Validate(year, month, day); err != nil {
		return err
	}
	// Validate allows day 30 in any month; the CLI tightens to the real length.
	if day > hijri.DaysInMonth(year, month) {
		return fmt.Errorf("invalid Hijri date %q: %s %d has %d days",
			arg, hijri.MonthName(month), year, hijri.DaysInMonth(year, month))
	}
	h := hijri.Date{Year: year, Month: month, Day: day}
	g := hijri.ToGregorian(h)
	w := hijri.Weekday(hijri.ToJulian(h))
	cmd.Printf("Hijri:     %04d/%02d/%02d - %d %s %d AH\n",
		h.Year, h.Month, h.Day, h.Day, hijri.MonthName(h.Month), h.Year)
	cmd.Printf("Gregorian: %04d/%02d/%02d\n", g.Year, g.Month, g.Day)
	cmd.Printf("Weekday:   %s\n", hijri.WeekdayName(w))
	return nil
}
