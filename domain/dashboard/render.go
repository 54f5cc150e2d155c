package dashboard

import (
	"io"
	"sort"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arrahmanlabs/waitlist-api/domain/analytics"
)

var labelCaser = cases.Title(language.English)

// prettyLabel turns an option token like "very_meaningful" into "Very
// Meaningful" for chart axes.
func prettyLabel(value string) string {
	return labelCaser.String(strings.ReplaceAll(value, "_", " "))
}

// RenderPage writes the dashboard HTML for a summary. A store with no
// responses renders a plain empty state instead of zero-filled charts.
func RenderPage(w io.Writer, summary *analytics.Summary) error {
	if summary.TotalResponses == 0 {
		return renderEmptyState(w)
	}

	page := components.NewPage()
	page.PageTitle = "AR Rahman Waitlist Dashboard"

	page.AddCharts(
		distributionBar("Age", summary.AgeDistribution, false),
		distributionBar("Prayer Frequency", summary.PrayerFrequencyDistribution, true),
		distributionBar("Arabic Understanding", summary.ArabicUnderstandingDistribution, true),
		distributionBar("AR Interest", summary.ARInterestDistribution, true),
		distributionBar("Feature Interest", summary.FeaturesDistribution, true),
		dailyLine(summary.DailySubmissions),
	)

	return page.Render(w)
}

func renderEmptyState(w io.Writer) error {
	_, err := io.WriteString(w, `<!DOCTYPE html>
<html>
<head><title>AR Rahman Waitlist Dashboard</title></head>
<body style="font-family: Arial, sans-serif; text-align: center; padding-top: 80px;">
<h1>Waitlist Dashboard</h1>
<p>No survey responses yet.</p>
</body>
</html>`)
	return err
}

// distributionBar renders one frequency map as a bar chart. Buckets are
// sorted by count descending when byCount is set, otherwise by label, so the
// chart is stable across renders.
func distributionBar(title string, buckets map[string]int, byCount bool) *charts.Bar {
	type bucket struct {
		label string
		count int
	}

	ordered := make([]bucket, 0, len(buckets))
	for label, count := range buckets {
		ordered = append(ordered, bucket{label: prettyLabel(label), count: count})
	}

	sort.Slice(ordered, func(i, j int) bool {
		if byCount && ordered[i].count != ordered[j].count {
			return ordered[i].count > ordered[j].count
		}
		return ordered[i].label < ordered[j].label
	})

	labels := make([]string, 0, len(ordered))
	values := make([]opts.BarData, 0, len(ordered))
	for _, b := range ordered {
		labels = append(labels, b.label)
		values = append(values, opts.BarData{Value: b.count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("Responses", values)

	return bar
}

func dailyLine(daily []analytics.DailyCount) *charts.Line {
	dates := make([]string, 0, len(daily))
	values := make([]opts.LineData, 0, len(daily))
	for _, d := range daily {
		dates = append(dates, d.Date)
		values = append(values, opts.LineData{Value: d.Count})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Daily Submissions"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(dates).AddSeries("Submissions", values,
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.2}),
	)

	return line
}
