// Command wiresync builds and measures wire curves against a routing
// document from the command line.
package main

import (
	"flag"
	"fmt"
	"os"

	"qet-wiremanager/internal/document"
	"qet-wiremanager/internal/wiresync"
	"qet-wiremanager/internal/wiretable"
)

func main() {
	docPath := flag.String("doc", "", "Path to routing document (JSON)")
	sheetPath := flag.String("sheet", "", "Path to wire table sheet (JSON)")
	op := flag.String("op", "build", "Operation: build or measure")
	row := flag.Int("row", 0, "Wire row to build (0 = all rows)")
	sag := flag.Float64("sag", 0, "Curve sag override (0 = default)")
	flag.Parse()

	if *docPath == "" || *sheetPath == "" {
		fmt.Println("Usage: wiresync -doc <document.json> -sheet <wires.json> [-op build|measure] [-row N] [-sag 5]")
		os.Exit(1)
	}

	doc, err := document.Load(*docPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load document: %v\n", err)
		os.Exit(1)
	}
	sheet, err := wiretable.LoadSheet(*sheetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load sheet: %v\n", err)
		os.Exit(1)
	}

	tables := wiretable.NewRegistry()
	tables.Add(sheet)
	syncer := wiresync.New(doc, tables)
	syncer.Sag = *sag

	switch *op {
	case "build":
		rows := []int{*row}
		if *row == 0 {
			rows = rows[:0]
			for r := wiretable.FirstWireRow; r < wiretable.FirstWireRow+wiretable.WireRowCount(sheet); r++ {
				rows = append(rows, r)
			}
		}
		for _, r := range rows {
			c, err := syncer.Build(sheet, r)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Row %d: %v\n", r, err)
				continue
			}
			fmt.Printf("Row %d: built %q (%s)\n", r, c.Label(), c.SyncLabel())
		}

	case "measure":
		for _, c := range doc.Curves() {
			if c.SyncLabel() == "" {
				continue
			}
			if err := syncer.Refresh(c); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", c.Label(), err)
				continue
			}
			if err := syncer.MeasureAndWriteBack(c); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", c.Label(), err)
				continue
			}
			fmt.Printf("%s: length %.2f\n", c.Label(), c.Length())
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown operation %q\n", *op)
		os.Exit(1)
	}

	if err := doc.Save(*docPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save document: %v\n", err)
		os.Exit(1)
	}
	if err := sheet.Save(*sheetPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save sheet: %v\n", err)
		os.Exit(1)
	}
}
