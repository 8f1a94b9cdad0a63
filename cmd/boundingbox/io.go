package main

import (
	"encoding/csv"
	"io"
	"io/ioutil"
	"os"

	"github.com/carbocation/axial"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

type rectRow struct {
	Left   float64 `csv:"left"`
	Top    float64 `csv:"top"`
	Right  float64 `csv:"right"`
	Bottom float64 `csv:"bottom"`
}

type boxRow struct {
	Component int     `csv:"component"`
	Left      float64 `csv:"left"`
	Top       float64 `csv:"top"`
	Right     float64 `csv:"right"`
	Bottom    float64 `csv:"bottom"`
	Members   int     `csv:"members"`
}

// readRects loads the input rectangles, counting rows whose coordinates
// collapse to the empty rectangle rather than keeping them.
func readRects(path string, delimiter rune) ([]axial.Rect, int, error) {
	fileBytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, 0, pfx.Err(err)
	}

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delimiter
		r.LazyQuotes = true
		return r
	})

	records := []*rectRow{}
	if err := gocsv.UnmarshalBytes(fileBytes, &records); err != nil {
		return nil, 0, pfx.Err(err)
	}

	rects := make([]axial.Rect, 0, len(records))
	dropped := 0
	for _, record := range records {
		r, err := axial.New(record.Left, record.Top, record.Right, record.Bottom)
		if err != nil {
			return nil, 0, pfx.Err(err)
		}
		if r.IsEmpty() {
			dropped++
			continue
		}
		rects = append(rects, r)
	}

	return rects, dropped, nil
}

func writeBoxes(rows []*boxRow, outPath string) error {
	if outPath == "" {
		return pfx.Err(gocsv.Marshal(&rows, os.Stdout))
	}

	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return pfx.Err(err)
	}
	defer f.Close()

	return pfx.Err(gocsv.Marshal(&rows, f))
}
