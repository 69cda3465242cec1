// Copyright 2025 Sonic Labs
// This file is part of Metropolis, a sampling tool of the Aida Testing Infrastructure for Sonic
//
// Metropolis is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Metropolis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Metropolis. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"fmt"
	"io"
	"net/http"

	"github.com/0xsoniclabs/metropolis/stochastic/metropolis"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// HTML references for the rendered pages.
const traceRef = "trace"
const rejectionRef = "rejections"
const cdfRef = "cdf"
const summaryRef = "summary"

// MainHtml is the index page.
const MainHtml = `
<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <title>Aida: Metropolis Sampler</title>
  </head>
  <body>
    <h1>Aida: Metropolis Sampler</h1>
    <ul>
    <li> <h3> <a href="/` + traceRef + `"> Chain Trace </a> </h3> </li>
    <li> <h3> <a href="/` + rejectionRef + `"> Rejections </a> </h3> </li>
    <li> <h3> <a href="/` + cdfRef + `"> Empirical vs. Laplace CDF </a> </h3> </li>
    <li> <h3> <a href="/` + summaryRef + `"> Summary </a> </h3> </li>
    </ul>
</body>
</html>
`

// renderMain renders the main menu.
func renderMain(w http.ResponseWriter, r *http.Request) {
	_, _ = fmt.Fprint(w, MainHtml)
}

// convertLineData converts points to chart points.
func convertLineData(data [][2]float64) []opts.LineData {
	items := []opts.LineData{}
	for _, pair := range data {
		items = append(items, opts.LineData{Value: pair})
	}
	return items
}

// newLineChart creates a line chart with value axes.
func newLineChart(title, subtitle, xName, yName string) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme:     types.ThemeChalk,
		PageTitle: title,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yName, Type: "value"}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}))
	return chart
}

// newTraceChart plots the state of the chain per row.
func newTraceChart(view *viewState) *charts.Line {
	subtitle := fmt.Sprintf("%d rows; mean %.4f, variance %.4f after %d burn-in rows",
		view.summary.Rows, view.summary.Mean, view.summary.Variance, view.summary.BurnIn)
	chart := newLineChart("Chain Trace", subtitle, "row", "x")
	chart.AddSeries("x", convertLineData(view.trace))
	return chart
}

// newRejectionChart plots the cumulative number of rejections per row.
func newRejectionChart(view *viewState) *charts.Line {
	subtitle := fmt.Sprintf("%d rejections; acceptance rate %.2f%%",
		view.summary.Rejected, 100*view.summary.AcceptanceRate)
	chart := newLineChart("Rejections", subtitle, "row", "rejections")
	chart.AddSeries("Rejections", convertLineData(view.rejections))
	return chart
}

// newCDFChart compares the empirical CDF of the kept states with the Laplace CDF.
func newCDFChart(view *viewState) *charts.Line {
	subtitle := fmt.Sprintf("%d kept rows", view.summary.Kept())
	chart := newLineChart("Empirical vs. Laplace CDF", subtitle, "x", "P(X <= x)")
	chart.AddSeries("eCDF", convertLineData(view.ecdf)).
		AddSeries("Laplace", convertLineData(view.target))
	return chart
}

// renderChart writes the chart built from the current view.
func renderChart(build func(*viewState) *charts.Line) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := currentView()
		if err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		_ = build(view).Render(w)
	}
}

// renderSummary renders the summary table as plain text.
func renderSummary(w http.ResponseWriter, r *http.Request) {
	view, err := currentView()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = fmt.Fprintln(w, view.summary.String())
}

// Render writes all charts of a chain into a single HTML page.
func Render(w io.Writer, chain *metropolis.Chain, burnIn float64) error {
	if chain == nil {
		return fmt.Errorf("visualizer: chain is nil")
	}
	view, err := buildViewState(chain, burnIn)
	if err != nil {
		return err
	}
	page := components.NewPage()
	page.PageTitle = "Aida: Metropolis Sampler"
	page.AddCharts(
		newTraceChart(view),
		newRejectionChart(view),
		newCDFChart(view),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("visualizer: render page: %w", err)
	}
	return nil
}

// NewHandler returns the handler serving the pages of the current chain.
func NewHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", renderMain)
	mux.HandleFunc("/"+traceRef, renderChart(newTraceChart))
	mux.HandleFunc("/"+rejectionRef, renderChart(newRejectionChart))
	mux.HandleFunc("/"+cdfRef, renderChart(newCDFChart))
	mux.HandleFunc("/"+summaryRef, renderSummary)
	return mux
}

// FireUpWeb produces the charts of a chain and visualizes them with a
// local web-server.
func FireUpWeb(chain *metropolis.Chain, burnIn float64, addr string) error {
	if err := setViewState(chain, burnIn); err != nil {
		return err
	}
	return http.ListenAndServe(":"+addr, NewHandler())
}
