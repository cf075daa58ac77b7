//go:build analysis

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"QAlgoBench/verify"
)

type summaryStats struct {
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      float64 `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      float64 `json:"max"`
	IQR      float64 `json:"iqr"`
	Skewness float64 `json:"skewness"`
	Kurtosis float64 `json:"kurtosis_excess"`
}

// ------------------------------ stats utilities ------------------------------

func computeStats(x []float64) summaryStats {
	n := len(x)
	if n == 0 {
		return summaryStats{}
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[n-1]
	median := quantileSorted(cp, 0.5)
	q1 := quantileSorted(cp, 0.25)
	q3 := quantileSorted(cp, 0.75)
	iqr := q3 - q1
	var m float64
	for _, v := range x {
		m += v
	}
	m /= float64(n)
	var m2, m3, m4 float64
	for _, v := range x {
		d := v - m
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	var std float64
	if n > 1 {
		std = math.Sqrt(m2 / float64(n-1))
	}
	var skew, kurtEx float64
	if std > 0 {
		m2n := m2 / float64(n)
		m3n := m3 / float64(n)
		m4n := m4 / float64(n)
		skew = m3n / math.Pow(m2n, 1.5)
		kurtEx = m4n/m2n/m2n - 3.0
	}
	return summaryStats{Count: n, Mean: m, Std: std, Min: minv, Q1: q1, Median: median, Q3: q3, Max: maxv, IQR: iqr, Skewness: skew, Kurtosis: kurtEx}
}

func quantileSorted(sorted []float64, p float64) float64 {
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := p * float64(len(sorted)-1)
	l := int(math.Floor(pos))
	r := int(math.Ceil(pos))
	if l == r {
		return sorted[l]
	}
	w := pos - float64(l)
	return sorted[l]*(1-w) + sorted[r]*w
}

func freedmanDiaconisBins(x []float64) int {
	n := len(x)
	if n < 2 {
		return 1
	}
	cp := append([]float64(nil), x...)
	sort.Float64s(cp)
	iqr := quantileSorted(cp, 0.75) - quantileSorted(cp, 0.25)
	if iqr == 0 {
		if n < 20 {
			return n
		}
		return 20
	}
	bw := 2 * iqr * math.Pow(float64(n), -1.0/3.0)
	if bw <= 0 {
		if n < 20 {
			return n
		}
		return 20
	}
	r := cp[n-1] - cp[0]
	k := int(math.Ceil(r / bw))
	if k < 5 {
		k = 5
	}
	if k > 100 {
		k = 100
	}
	return k
}

func computeHistogram(values []float64, nbins int) (edges []float64, counts []int) {
	if len(values) == 0 {
		return []float64{0, 1}, []int{0}
	}
	cp := append([]float64(nil), values...)
	sort.Float64s(cp)
	minv, maxv := cp[0], cp[len(cp)-1]
	if nbins < 1 {
		nbins = 1
	}
	width := (maxv - minv) / float64(nbins)
	if width <= 0 {
		width = 1
	}
	edges = make([]float64, nbins+1)
	for i := 0; i <= nbins; i++ {
		edges[i] = minv + float64(i)*width
	}
	counts = make([]int, nbins)
	for _, v := range values {
		idx := int(math.Floor((v - minv) / width))
		if idx < 0 {
			idx = 0
		}
		if idx >= nbins {
			idx = nbins - 1
		}
		counts[idx]++
	}
	return
}

// ------------------------- collection helpers (JSON) -------------------------

func loadReport(path string) (*verify.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r verify.Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &r, nil
}

// sizeRates returns one label and success rate per problem size, in
// report order. Sizes skipped for syntax errors are left out.
func sizeRates(r *verify.Report) (labels []string, rates []float64) {
	for _, size := range r.Sizes {
		total := size.TotalSuccess + size.TotalFail
		if size.SyntaxError != "" || total == 0 {
			continue
		}
		labels = append(labels, fmt.Sprintf("n=%d", size.N))
		rates = append(rates, float64(size.TotalSuccess)/float64(total))
	}
	return labels, rates
}

// trialRates flattens the per-trial success fractions across all sizes.
func trialRates(r *verify.Report) []float64 {
	var out []float64
	for _, size := range r.Sizes {
		for _, trial := range size.Trials {
			total := trial.Success + trial.Fail
			if total == 0 {
				continue
			}
			out = append(out, float64(trial.Success)/float64(total))
		}
	}
	return out
}

func overallRate(r *verify.Report) float64 {
	success, fail := 0, 0
	for _, size := range r.Sizes {
		success += size.TotalSuccess
		fail += size.TotalFail
	}
	if success+fail == 0 {
		return 0
	}
	return float64(success) / float64(success+fail)
}

func totalSeconds(r *verify.Report) float64 {
	var sum float64
	for _, t := range r.Timings {
		sum += t.Seconds
	}
	return sum
}

// ------------------------- plotting: go-echarts HTML -------------------------

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

func toLineItems(vals []float64) []opts.LineData {
	out := make([]opts.LineData, len(vals))
	for i, v := range vals {
		out[i] = opts.LineData{Value: v}
	}
	return out
}

func newRateChart(r *verify.Report) *charts.Line {
	labels, rates := sizeRates(r)
	line := charts.NewLine()
	title := fmt.Sprintf("%s success rate by size", r.Algorithm)
	subtitle := fmt.Sprintf("repeats=%d, overall=%.3f, digest %.16s", r.Repeats, overallRate(r), r.Digest)
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels).
		AddSeries(r.Algorithm, toLineItems(rates)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return line
}

func newHistogramChart(title string, values []float64, stats summaryStats) *charts.Bar {
	nbins := freedmanDiaconisBins(values)
	edges, counts := computeHistogram(values, nbins)
	xLabels := make([]string, nbins)
	for i := 0; i < nbins; i++ {
		center := 0.5 * (edges[i] + edges[i+1])
		xLabels[i] = fmt.Sprintf("%.2f", center)
	}
	bar := charts.NewBar()
	subtitle := fmt.Sprintf("n=%d, mean=%.3f, std=%.3f, median=%.3f, IQR=%.3f", stats.Count, stats.Mean, stats.Std, stats.Median, stats.IQR)
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "600px"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}, opts.DataZoom{Type: "slider"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("trials", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

func newOverallChart(reports []*verify.Report) *charts.Bar {
	labels := make([]string, len(reports))
	items := make([]opts.BarData, len(reports))
	for i, r := range reports {
		labels[i] = r.Algorithm
		items[i] = opts.BarData{Value: overallRate(r)}
	}
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "overall success rate by algorithm"}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "overall success rate", Width: "1200px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("success rate", items).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(true)}))
	return bar
}

// ------------------------------ JSON and I/O ------------------------------

type sizeRate struct {
	N    int     `json:"n"`
	Rate float64 `json:"rate"`
}

type reportSummary struct {
	Digest     string       `json:"digest"`
	Overall    float64      `json:"overall_success_rate"`
	BySize     []sizeRate   `json:"success_rate_by_size"`
	TrialRates summaryStats `json:"trial_rate_stats"`
	Seconds    float64      `json:"total_seconds"`
}

func summarize(r *verify.Report) reportSummary {
	s := reportSummary{
		Digest:     r.Digest,
		Overall:    overallRate(r),
		TrialRates: computeStats(trialRates(r)),
		Seconds:    totalSeconds(r),
	}
	for _, size := range r.Sizes {
		total := size.TotalSuccess + size.TotalFail
		if size.SyntaxError != "" || total == 0 {
			continue
		}
		s.BySize = append(s.BySize, sizeRate{N: size.N, Rate: float64(size.TotalSuccess) / float64(total)})
	}
	return s
}

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// ------------------------------- main routine -------------------------------

func main() {
	outDir := flag.String("out", "Analysis_Reports", "output directory for charts and stats")
	flag.Parse()
	if flag.NArg() == 0 {
		log.Fatalf("usage: analysis [-out dir] report.json [report.json ...]")
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}

	reports := make([]*verify.Report, 0, flag.NArg())
	for _, path := range flag.Args() {
		r, err := loadReport(path)
		if err != nil {
			log.Fatalf("load report: %v", err)
		}
		reports = append(reports, r)
	}

	outStats := make(map[string]reportSummary, len(reports))
	page := components.NewPage()
	if len(reports) > 1 {
		page.AddCharts(newOverallChart(reports))
	}
	for _, r := range reports {
		page.AddCharts(newRateChart(r))
		if tr := trialRates(r); len(tr) > 0 {
			page.AddCharts(newHistogramChart(fmt.Sprintf("%s trial success rates", r.Algorithm), tr, computeStats(tr)))
		}
		outStats[r.Algorithm] = summarize(r)
	}

	ts := time.Now().Format("20060102_150405")
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("check_stats_%s.json", ts))
	if err := saveJSON(jsonPath, outStats); err != nil {
		log.Printf("warn: save stats: %v", err)
	}

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("check_charts_%s.html", ts))
	f, err := os.Create(htmlPath)
	if err != nil {
		log.Fatalf("create html: %v", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		log.Fatalf("render html: %v", err)
	}
	fmt.Println("Chart page:", htmlPath)
	fmt.Println("Stats JSON:", jsonPath)
}
