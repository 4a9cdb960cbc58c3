package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/halehq/hale/internal/bmi"
	"github.com/halehq/hale/internal/checkup"
	"github.com/halehq/hale/internal/goal"
)

var bmiCmd = &cobra.Command{
	Use:   "bmi <weight-kg> <height-m>",
	Short: "Classify a BMI reading without starting a session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := checkup.ParseWeight(args[0])
		if err != nil {
			return err
		}
		h, err := checkup.ParseHeight(args[1])
		if err != nil {
			return err
		}

		m, err := bmi.Classify(w, h)
		if err != nil {
			return err
		}

		fmt.Printf("BMI %.1f  %s\n", m.Value, categoryColor(m.Category).Sprint(m.Category.Label()))
		fmt.Printf("Suggested goal: %s\n", goal.Suggested(m.Category).Label())
		return nil
	},
}

func categoryColor(c bmi.Category) *color.Color {
	switch c {
	case bmi.CategoryUnderweight:
		return color.New(color.FgCyan, color.Bold)
	case bmi.CategoryNormal:
		return color.New(color.FgGreen, color.Bold)
	case bmi.CategoryOverweight:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
