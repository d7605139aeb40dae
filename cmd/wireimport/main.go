// Command wireimport resolves a schematic conductor export into logical
// wires and writes them into a wire table sheet.
package main

import (
	"flag"
	"fmt"
	"os"

	"qet-wiremanager/internal/schematic"
	"qet-wiremanager/internal/wiretable"
)

func main() {
	exportPath := flag.String("export", "", "Path to schematic conductor export (XML)")
	sheetPath := flag.String("sheet", "", "Path to wire table sheet (JSON), created if missing")
	tableName := flag.String("table", "Wires", "Table name for a newly created sheet")
	flag.Parse()

	if *exportPath == "" || *sheetPath == "" {
		fmt.Println("Usage: wireimport -export <export.xml> -sheet <wires.json> [-table Wires]")
		os.Exit(1)
	}

	records, err := schematic.ReadExport(*exportPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read export: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Read %d conductor records\n", len(records))

	wires := schematic.Resolve(records)
	fmt.Printf("Resolved %d logical wires\n", len(wires))

	sheet, err := wiretable.LoadSheet(*sheetPath)
	if err != nil {
		sheet = wiretable.NewSheet(*tableName)
	}

	firstRow := wiretable.AppendWires(sheet, wires)
	if err := sheet.Save(*sheetPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to save sheet: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Appended at row %d, sheet now holds %d wires\n",
		firstRow, wiretable.WireRowCount(sheet))
	for _, w := range wires {
		fmt.Printf("  %-8s %s:%s -> %s:%s  section=%s color=%s\n",
			w.WireID, w.FromRef, w.FromPin, w.ToRef, w.ToPin, w.Section, w.Color)
	}
}
