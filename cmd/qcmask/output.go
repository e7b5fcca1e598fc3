package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	jsoniter "github.com/json-iterator/go"

	"github.com/cwbudde/algo-qc/qc/mask"
	"github.com/cwbudde/algo-qc/stats/summary"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type seriesReport struct {
	File     string   `json:"file"`
	Samples  int      `json:"samples"`
	Masked   int      `json:"masked"`
	Segments [][2]int `json:"segments"`

	// Statistics of the unmasked samples before any repair.
	Mean float64 `json:"mean"`
	RMS  float64 `json:"rms"`
	Peak float64 `json:"peak"`
}

func buildReports(files []string, series [][]float64, masks []*mask.Mask, clean []summary.Summary) []seriesReport {
	reports := make([]seriesReport, len(files))
	for i, m := range masks {
		segs := make([][2]int, 0, m.NSeg())
		if m != nil {
			for _, s := range m.Segs {
				segs = append(segs, [2]int{s.Start, s.End})
			}
		}

		reports[i] = seriesReport{
			File:     files[i],
			Samples:  len(series[i]),
			Masked:   m.Count(),
			Segments: segs,
			Mean:     clean[i].Mean,
			RMS:      clean[i].RMS,
			Peak:     clean[i].Peak,
		}
	}
	return reports
}

func writeJSON(w io.Writer, reports []seriesReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

func writeTable(w io.Writer, reports []seriesReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "File\tSamples\tMasked\tSegments\tRMS\tPeak\tRanges\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t-------\t------\t--------\t---\t----\t------\n"); err != nil {
		return err
	}

	var samples, masked int
	for _, r := range reports {
		samples += r.Samples
		masked += r.Masked

		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%.4g\t%.4g\t%s\n",
			r.File,
			humanize.Comma(int64(r.Samples)),
			humanize.Comma(int64(r.Masked)),
			len(r.Segments),
			r.RMS,
			r.Peak,
			formatRanges(r.Segments),
		); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nmasked %s of %s samples\n", humanize.Comma(int64(masked)), humanize.Comma(int64(samples)))
	return err
}

func formatRanges(segs [][2]int) string {
	if len(segs) == 0 {
		return "-"
	}

	parts := make([]string, len(segs))
	for i, s := range segs {
		if s[0] == s[1] {
			parts[i] = fmt.Sprint(s[0])
		} else {
			parts[i] = fmt.Sprintf("%d-%d", s[0], s[1])
		}
	}
	return strings.Join(parts, ",")
}
