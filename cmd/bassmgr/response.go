package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-bassmgr/dsp/bass"
	"github.com/cwbudde/algo-bassmgr/measure/response"
)

func printResponse(w io.Writer, e *bass.Engine) error {
	rows, err := response.Table(e, response.LogFrequencies(10, 20000, 34))
	if err != nil {
		return err
	}

	p := e.Parameters()
	fmt.Fprintf(w, "crossover %.1f Hz, LFE %.1f Hz, boost %v, %.0f Hz\n\n",
		p.CrossoverHz, p.LFECutoffHz, p.LFEBoost, e.SampleRate())

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Hz\tmain dB\tredirected dB\tmain+sub dB\tLFE dB\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%.1f\t%s\t%s\t%s\t%s\t\n", r.FreqHz, formatDB(r.Main), formatDB(r.Redirected), formatDB(r.Sum), formatDB(r.LFE))
	}
	return tw.Flush()
}

func formatDB(db float64) string {
	if db < -120 {
		return "-inf"
	}
	return fmt.Sprintf("%.2f", db)
}
