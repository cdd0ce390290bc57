package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"

	"github.com/dd0wney/cluso-animator/pkg/keyframe"
)

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WriteSVG writes one frame as an SVG document of the given size using the
// same primitives as DrawFrame.
func WriteSVG(w io.Writer, width, height int, nodes []keyframe.Node, edges []keyframe.Edge, style Style) error {
	bw := bufio.NewWriter(w)
	thickness := int(style.thickness())

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)

	for _, e := range edges {
		if e.From < 0 || e.From >= len(nodes) || e.To < 0 || e.To >= len(nodes) {
			continue
		}
		a, b := nodes[e.From], nodes[e.To]
		switch e.Kind {
		case keyframe.EdgeCircle:
			cx, cy, r := circleFor(a, b)
			fmt.Fprintf(bw, `  <circle cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n", cx, cy, r, hex(style.EdgeColor))
		default:
			fmt.Fprintf(bw, `  <line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%d" stroke-linecap="round"/>`+"\n",
				a.X, a.Y, b.X, b.Y, hex(style.EdgeColor), thickness)
		}
	}

	if style.DrawNodes {
		for _, n := range nodes {
			c := style.NodeColor
			if n.Selected {
				c = style.SelectedColor
			}
			fmt.Fprintf(bw, `  <circle cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n", n.X, n.Y, thickness, hex(c))
		}
	}

	fmt.Fprintln(bw, "</svg>")
	return bw.Flush()
}
