package main

import (
	"fmt"
	"image/png"
	"math"
	"os"

	"github.com/carbocation/axial"
	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"
)

const renderMargin = 10 // pixels of padding around the drawing

// renderComponents draws every member rectangle with a thin gray stroke and
// each component's bounding box with a thick black stroke.
func renderComponents(partitions [][]axial.Rect, scale float64, outName string) error {
	var all []axial.Rect
	for _, members := range partitions {
		all = append(all, members...)
	}

	world := axial.Enclose(all...)
	if world.IsEmpty() {
		return pfx.Err(fmt.Errorf("nothing to render"))
	}
	if math.IsInf(world.Width(), 1) || math.IsInf(world.Height(), 1) {
		return pfx.Err(fmt.Errorf("cannot render unbounded rectangles"))
	}

	canvasWidth := int(math.Ceil(world.Width()*scale)) + 2*renderMargin
	canvasHeight := int(math.Ceil(world.Height()*scale)) + 2*renderMargin
	dc := gg.NewContext(canvasWidth, canvasHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Canvas coordinates, offset so the world's left top lands on the
	// margin.
	flatten := func(r axial.Rect) (x, y, w, h float64) {
		x = (r.Left()-world.Left())*scale + renderMargin
		y = (r.Top()-world.Top())*scale + renderMargin
		w = r.Width() * scale
		h = r.Height() * scale
		return x, y, w, h
	}

	for _, members := range partitions {
		dc.SetRGB(0.6, 0.6, 0.6)
		dc.SetLineWidth(1)
		for _, r := range members {
			dc.DrawRectangle(flatten(r))
			dc.Stroke()
		}

		dc.SetRGB(0, 0, 0)
		dc.SetLineWidth(3)
		dc.DrawRectangle(flatten(axial.Enclose(members...)))
		dc.Stroke()
	}

	return savePNG(dc, outName)
}

func savePNG(dc *gg.Context, outName string) error {
	f, err := os.OpenFile(outName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return pfx.Err(png.Encode(f, dc.Image()))
}
