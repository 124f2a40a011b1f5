// Plots the coefficient distributions of a generated key pair: the secret
// vectors over [-Eta, Eta] and the expanded matrix A bucketed over [0, Q).
// Output is a single self-contained HTML page.
//
// Usage:
//
//	go run ./Additionnals -seed "my seed phrase" -out coeff_dist.html
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/utils"

	"Dilithium-KeyGen/dilithium"
	"Dilithium-KeyGen/prof"
)

const numBuckets = 32

func main() {
	seed := flag.String("seed", "coeff-dist-demo", "key for the deterministic entropy source")
	outPath := flag.String("out", "coeff_dist.html", "output HTML file")
	flag.Parse()

	prng, err := utils.NewKeyedPRNG([]byte(*seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "prng error: %v\n", err)
		os.Exit(1)
	}
	pk, sk, err := dilithium.GenerateKeyPair(dilithium.KeygenOpts{
		Rand: prng,
		Observer: func(ev dilithium.StepEvent) {
			fmt.Fprintf(os.Stderr, "[keygen] %-14s %v\n", ev.Step, ev.Elapsed)
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "keygen error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "fingerprint: %s\n", pk.Record().Fingerprint())
	if err := prof.WriteReport(os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "report error: %v\n", err)
	}

	a, err := dilithium.ExpandMatrix(pk.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "expand error: %v\n", err)
		os.Exit(1)
	}

	page := components.NewPage().SetPageTitle("Coefficient Distributions")
	page.AddCharts(secretHistogram(sk), matrixHistogram(a))

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", *outPath)
}

// secretHistogram counts s1 and s2 coefficients per value in [-Eta, Eta].
func secretHistogram(sk *dilithium.SecretKey) *charts.Bar {
	countsS1 := make([]int, 2*dilithium.Eta+1)
	countsS2 := make([]int, 2*dilithium.Eta+1)
	for i := range sk.S1 {
		for _, c := range sk.S1[i] {
			countsS1[c+dilithium.Eta]++
		}
	}
	for i := range sk.S2 {
		for _, c := range sk.S2[i] {
			countsS2[c+dilithium.Eta]++
		}
	}

	labels := make([]string, 0, len(countsS1))
	s1Items := make([]opts.BarData, 0, len(countsS1))
	s2Items := make([]opts.BarData, 0, len(countsS2))
	for v := -dilithium.Eta; v <= dilithium.Eta; v++ {
		labels = append(labels, fmt.Sprintf("%d", v))
		s1Items = append(s1Items, opts.BarData{Value: countsS1[v+dilithium.Eta]})
		s2Items = append(s2Items, opts.BarData{Value: countsS2[v+dilithium.Eta]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Secret coefficient distribution",
			Subtitle: fmt.Sprintf("s1 (%d coeffs) and s2 (%d coeffs) over [-η, η]", dilithium.L*dilithium.N, dilithium.K*dilithium.N),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("s1", s1Items).
		AddSeries("s2", s2Items)
	return bar
}

// matrixHistogram buckets all K*L*N matrix coefficients across [0, Q).
func matrixHistogram(a *dilithium.Matrix) *charts.Bar {
	counts := make([]int, numBuckets)
	bucketWidth := (dilithium.Q + numBuckets - 1) / numBuckets
	for i := range a {
		for j := range a[i] {
			for _, c := range a[i][j] {
				counts[int(c)/bucketWidth]++
			}
		}
	}

	labels := make([]string, numBuckets)
	items := make([]opts.BarData, numBuckets)
	for b := 0; b < numBuckets; b++ {
		labels[b] = fmt.Sprintf("%dk", b*bucketWidth/1000)
		items[b] = opts.BarData{Value: counts[b]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Matrix A coefficient distribution",
			Subtitle: fmt.Sprintf("%d coefficients bucketed over [0, Q)", dilithium.K*dilithium.L*dilithium.N),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("A", items)
	return bar
}
