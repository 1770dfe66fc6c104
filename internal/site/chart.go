package site

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/iphase-tech/iphase-site/internal/content"
)

const (
	chartWidth  = 600.0
	chartHeight = 300.0
	chartPad    = 40.0
)

type point struct {
	X, Y float64
}

// chartPoints maps the series onto the plot area. Years are spaced evenly
// left to right; zero publications sits on the x axis and the maximum
// touches the top padding.
func chartPoints(series []content.ResearchPoint) []point {
	if len(series) == 0 {
		return nil
	}
	maxPubs := 1
	for _, p := range series {
		maxPubs = max(maxPubs, p.Pubs)
	}

	plotW := chartWidth - 2*chartPad
	plotH := chartHeight - 2*chartPad
	pts := make([]point, len(series))
	for i, p := range series {
		x := chartPad + plotW/2
		if len(series) > 1 {
			x = chartPad + plotW*float64(i)/float64(len(series)-1)
		}
		y := chartHeight - chartPad - plotH*float64(p.Pubs)/float64(maxPubs)
		pts[i] = point{X: x, Y: y}
	}
	return pts
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// researchChart draws the year/publication series as an inline SVG line
// chart with a native tooltip on every point.
func researchChart(series []content.ResearchPoint, stroke string) g.Node {
	pts := chartPoints(series)
	coords := make([]string, len(pts))
	for i, p := range pts {
		coords[i] = num(p.X) + "," + num(p.Y)
	}

	maxPubs := 0
	for _, p := range series {
		maxPubs = max(maxPubs, p.Pubs)
	}

	base := chartHeight - chartPad
	return g.El("svg",
		Class("chart"),
		g.Attr("viewBox", "0 0 "+num(chartWidth)+" "+num(chartHeight)),
		g.Attr("role", "img"),
		g.Attr("aria-label", "Publications per year"),
		g.El("line", Class("axis"),
			g.Attr("x1", num(chartPad)), g.Attr("y1", num(base)),
			g.Attr("x2", num(chartWidth-chartPad)), g.Attr("y2", num(base))),
		g.El("line", Class("axis"),
			g.Attr("x1", num(chartPad)), g.Attr("y1", num(chartPad)),
			g.Attr("x2", num(chartPad)), g.Attr("y2", num(base))),
		g.El("text", Class("tick"),
			g.Attr("x", num(chartPad-8)), g.Attr("y", num(chartPad+4)),
			g.Attr("text-anchor", "end"), g.Text(strconv.Itoa(maxPubs))),
		g.El("text", Class("tick"),
			g.Attr("x", num(chartPad-8)), g.Attr("y", num(base+4)),
			g.Attr("text-anchor", "end"), g.Text("0")),
		g.El("polyline",
			g.Attr("points", strings.Join(coords, " ")),
			g.Attr("fill", "none"),
			g.Attr("stroke", stroke),
			g.Attr("stroke-width", "3"),
		),
		g.Group(pointNodes(series, pts, stroke)),
	)
}

func pointNodes(series []content.ResearchPoint, pts []point, fill string) []g.Node {
	nodes := make([]g.Node, 0, 2*len(pts))
	for i, p := range pts {
		nodes = append(nodes,
			g.El("circle",
				g.Attr("cx", num(p.X)), g.Attr("cy", num(p.Y)), g.Attr("r", "5"),
				g.Attr("fill", fill),
				g.El("title", g.Text(series[i].Year+": "+strconv.Itoa(series[i].Pubs))),
			),
			g.El("text", Class("tick"),
				g.Attr("x", num(p.X)), g.Attr("y", num(chartHeight-chartPad+20)),
				g.Attr("text-anchor", "middle"), g.Text(series[i].Year)),
		)
	}
	return nodes
}
