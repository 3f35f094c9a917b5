package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/manwar/Calendar-Hijri/hijri"
	"github.com/manwar/Calendar-Hijri/internal/grid"
)

func newRootCmd() *cobra.Command {
	var fancy bool
	cmd := &cobra.Command{
		Use:   "hijri-cal [year [month]]",
		Short: "Display the Hijri calendar and convert dates",
		Long: "Display a month of the civil Hijri calendar, a whole year, or convert\n" +
			"dates between the Hijri and Gregorian calendars.\n\n" +
			"The calendar is the tabular (30-year cycle) approximation; dates may\n" +
			"differ by one day from observation-based calendars.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendar(cmd, args, fancy)
		},
	}
	cmd.Flags().BoolVarP(&fancy, "fancy", "f", false, "render with lipgloss styles (Sunday-first week)")
	cmd.AddCommand(newConvertCmd())
	return cmd
}

func render(m grid.Month, fancy bool) string {
	if fancy {
		return grid.RenderFancy(m)
	}
	return grid.RenderANSI(m)
}

func runCalendar(cmd *cobra.Command, args []string, fancy bool) error {
	switch len(args) {
	case 0:
		now := time.Now()
		g := hijri.GregorianDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
		h := hijri.FromGregorian(g)
		m := grid.NewMonth(h.Year, h.Month)
		m.Highlight = h.Day
		cmd.Print(render(m, fancy))
	case 1:
		year, err := strconv.Atoi(args[0])
		if err != nil || year < 1 {
			return fmt.Errorf("invalid year argument %q", args[0])
		}
		printYear(cmd, year, fancy)
	case 2:
		year, err1 := strconv.Atoi(args[0])
		month, err2 := strconv.Atoi(args[1])
		if err1 != nil || err2 != nil {
			return fmt.Errorf("invalid year or month argument")
		}
		if err := hijri.Validate(year, month, 1); err != nil {
			return err
		}
		cmd.Print(render(grid.NewMonth(year, month), fancy))
	}
	return nil
}

func printYear(cmd *cobra.Command, year int, fancy bool) {
	for row := 0; row < 3; row++ {
		rendered := make([]string, 4)
		for col := 0; col < 4; col++ {
			rendered[col] = render(grid.NewMonth(year, row*4+col+1), fancy)
		}
		cmd.Println(grid.JoinRow(rendered, 4))
	}
}
