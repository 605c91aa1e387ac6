package analysis_test

import (
	"context"
	"fmt"

	"github.com/pixelveil/stegano"
	"github.com/pixelveil/stegano/analysis"
)

func ExampleAnalyze() {
	// A constant image: the most suspicious carrier there is, with an
	// all-zero LSB stream.
	grid := stegano.NewGrid(64, 64, 3)
	for i := range grid.Pix {
		grid.Pix[i] = 200
	}

	report, err := analysis.Analyze(context.Background(), grid)
	if err != nil {
		fmt.Printf("Error analyzing: %v\n", err)
		return
	}
	fmt.Println(report.Summary[0])
	fmt.Println(report.Summary[1])

	// Output:
	// Overall suspicion score: 1.00
	// Confidence level: HIGH
}
