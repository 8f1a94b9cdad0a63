// boundingbox reads a delimited file of axis-aligned rectangles, groups the
// rectangles into connected components (sets of transitively overlapping
// rectangles), and emits one bounding box per component.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/carbocation/axial"
)

func init() {
	flag.Usage = func() {
		flag.PrintDefaults()

		log.Println("Example input file layout:")
		log.Println("left,top,right,bottom")
		log.Println("1,2,3,4")
		log.Println("2,3,4,5")
	}
}

// componentSummary describes the result against the full input row count,
// including rows that were dropped before partitioning.
func componentSummary(components, valid, dropped int) string {
	return fmt.Sprintf("Found %d connected component(s) among %d of %d input rectangle(s)",
		components, valid, valid+dropped)
}

func main() {
	start := time.Now()
	log.Println("boundingbox start")
	defer func() {
		log.Printf("boundingbox end. Took %.2f seconds\n", time.Since(start).Seconds())
	}()

	var rectsPath, outPath, pngPath, delimiter string
	var scale float64
	var hist bool

	flag.StringVar(&rectsPath, "rects", "", "Path to a delimited file with one rectangle per row (columns left, top, right, bottom)")
	flag.StringVar(&outPath, "out", "", "(Optional) Path for the output CSV of component bounding boxes. Defaults to STDOUT.")
	flag.StringVar(&delimiter, "delimiter", ",", "(Optional) Field delimiter of the input file.")
	flag.StringVar(&pngPath, "png", "", "(Optional) If set, render the rectangles and their component bounding boxes to this PNG file.")
	flag.Float64Var(&scale, "scale", 10, "(Optional) Pixels per coordinate unit when rendering with -png.")
	flag.BoolVar(&hist, "hist", false, "(Optional) Print a histogram of rectangles per component.")
	flag.Parse()

	if rectsPath == "" {
		flag.Usage()
		os.Exit(1)
	}
	if len(delimiter) != 1 {
		log.Fatalf("The -delimiter flag must be exactly one character, got %q\n", delimiter)
	}

	rects, dropped, err := readRects(rectsPath, rune(delimiter[0]))
	if err != nil {
		log.Fatalln(err)
	}
	if dropped > 0 {
		log.Printf("Dropped %d empty or inverted rectangle(s)\n", dropped)
	}

	partitions := axial.Partitions(rects)
	log.Println(componentSummary(len(partitions), len(rects), dropped))

	rows := make([]*boxRow, 0, len(partitions))
	sizes := make([]float64, 0, len(partitions))
	for i, members := range partitions {
		box := axial.Enclose(members...)
		rows = append(rows, &boxRow{
			Component: i,
			Left:      box.Left(),
			Top:       box.Top(),
			Right:     box.Right(),
			Bottom:    box.Bottom(),
			Members:   len(members),
		})
		sizes = append(sizes, float64(len(members)))
	}

	if err := writeBoxes(rows, outPath); err != nil {
		log.Fatalln(err)
	}

	if hist && len(sizes) > 0 {
		fmt.Fprintln(os.Stderr, "Rectangles per component:")
		h := histogram.Hist(10, sizes)
		if err := histogram.Fprint(os.Stderr, h, histogram.Linear(5)); err != nil {
			log.Fatalln(err)
		}
	}

	if pngPath != "" {
		if err := renderComponents(partitions, scale, pngPath); err != nil {
			log.Fatalln(err)
		}
		log.Printf("Wrote %s\n", pngPath)
	}
}
