package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-qc/internal/testutil"
)

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseSeries(t *testing.T) {
	src := "# header\n1 2.5\n\n  -3e2\t4\n"

	got, err := parseSeries(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{1, 2.5, -300, 4}, 0)

	if _, err := parseSeries(strings.NewReader("1\nx\n")); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("err = %v, want a line 2 error", err)
	}
}

func TestFormatRanges(t *testing.T) {
	if got := formatRanges(nil); got != "-" {
		t.Fatalf("got %q", got)
	}
	if got := formatRanges([][2]int{{0, 3}, {7, 7}}); got != "0-3,7" {
		t.Fatalf("got %q", got)
	}
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags([]string{"-mode", "both", "-format", "json", "a.txt", "b.txt"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if opts.mode != "both" || opts.format != "json" || len(opts.files) != 2 {
		t.Fatalf("opts = %+v", opts)
	}

	if _, err := parseFlags(nil, io.Discard); err == nil {
		t.Fatal("missing files accepted")
	}
	if _, err := parseFlags([]string{"-format", "xml", "a.txt"}, io.Discard); err == nil {
		t.Fatal("unknown format accepted")
	}
}

func TestRunTable(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "dropout.txt", "0 0 0 0 0\n5 5 5 5 5\n")
	cfg := writeInput(t, dir, "qc.yaml", "drop_thr: 4\nntaper: 0\n")

	var out bytes.Buffer
	opts := options{config: cfg, mode: "basic", format: "table", apply: true, files: []string{in}}
	if err := run(opts, zap.NewNop(), &out); err != nil {
		t.Fatal(err)
	}

	text := out.String()
	for _, want := range []string{"dropout.txt", "0-3,5-9", "masked 9 of 10 samples"} {
		if !strings.Contains(text, want) {
			t.Fatalf("missing %q in:\n%s", want, text)
		}
	}

	fixed, err := readSeries(in + ".qc")
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, fixed, make([]float64, 10), 0)
}

func TestRunJSON(t *testing.T) {
	dir := t.TempDir()

	var b strings.Builder
	for _, v := range testutil.WithSpikes(testutil.DeterministicSine(50, 1, 300), 10, 120) {
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		b.WriteByte('\n')
	}
	in := writeInput(t, dir, "spike.txt", b.String())
	cfg := writeInput(t, dir, "qc.yaml", "mode: single\nsingle_trace_spike_thr: 1000\nspike_thr: 5\n")

	var out bytes.Buffer
	opts := options{config: cfg, format: "json", files: []string{in}}
	if err := run(opts, zap.NewNop(), &out); err != nil {
		t.Fatal(err)
	}

	var reports []seriesReport
	if err := json.Unmarshal(out.Bytes(), &reports); err != nil {
		t.Fatal(err)
	}

	if len(reports) != 1 || reports[0].Samples != 300 || reports[0].Masked != 1 {
		t.Fatalf("reports = %+v", reports)
	}
	if segs := reports[0].Segments; len(segs) != 1 || segs[0] != [2]int{120, 120} {
		t.Fatalf("segments = %v", segs)
	}
	if reports[0].Peak > 1 {
		t.Fatalf("peak %v includes the masked spike", reports[0].Peak)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "a.txt", "1 2 3\n")

	if err := run(options{mode: "sideways", format: "table", files: []string{in}}, zap.NewNop(), io.Discard); err == nil {
		t.Fatal("unknown mode accepted")
	}

	if err := run(options{format: "table", files: []string{filepath.Join(dir, "missing.txt")}}, zap.NewNop(), io.Discard); err == nil {
		t.Fatal("missing input accepted")
	}
}
