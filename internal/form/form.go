// Package form turns finalized aggregate values into the cell assignments
// of the regulator's flight-hours workbook. The output is a JSON document
// a spreadsheet filler (or a human with the blank template) can apply
// cell by cell.
package form

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"caai_logbook/internal/aggregate"
)

// Cell is one value placed on the template.
type Cell struct {
	Sheet string `json:"sheet"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value any    `json:"value"`

	// Format is the spreadsheet number format; empty for text cells.
	Format string `json:"format,omitempty"`
}

// Document is the filled form plus the raw values it was derived from.
type Document struct {
	Cells  []Cell                `json:"cells"`
	Values *aggregate.FormValues `json:"values"`
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func (d *Document) put(sheet string, row, col int, value any, format string) {
	d.Cells = append(d.Cells, Cell{Sheet: sheet, Row: row, Col: col, Value: value, Format: format})
}

func (d *Document) putHours(sheet string, row, col int, hours float64) {
	if hours <= 0 {
		return
	}
	d.put(sheet, row, col, round1(hours), "0.0")
}

// Build lays the aggregate values onto the template cells.
func Build(v *aggregate.FormValues) *Document {
	d := &Document{Values: v}

	// Table 1: one row per aircraft type.
	for i, row := range v.TypeRows {
		r := table1FirstRow + i
		d.put(SheetSummary, r, table1TypeCol, row.TypeCode, "")
		if col, ok := groupColumns[row.Group]; ok {
			d.put(SheetSummary, r, col, round1(row.FormTotal), "0.0")
		}
		d.putHours(SheetSummary, r, colDayPIC, row.DayPIC)
		d.putHours(SheetSummary, r, colDayPICXC, row.DayPICXC)
		d.putHours(SheetSummary, r, colDaySIC, row.DaySIC)
		d.putHours(SheetSummary, r, colDayStudent, row.DayStudent)
		d.putHours(SheetSummary, r, colNightPIC, row.NightPIC)
		d.putHours(SheetSummary, r, colNightPICXC, row.NightPICXC)
		d.putHours(SheetSummary, r, colNightSIC, row.NightSIC)
		d.putHours(SheetSummary, r, colNightStudent, row.NightStudent)
	}

	// Table 2: instrument time per type, devices folded onto their base
	// type's row.
	rowOfType := make(map[string]int, len(v.TypeRows))
	deviceOnRow := make(map[int]float64)
	for i, row := range v.TypeRows {
		r := table2FirstRow + i
		rowOfType[row.TypeCode] = r
		d.putHours(SheetSummary, r, colInstActual, row.InstrumentActual)
		d.putHours(SheetSummary, r, colInstSim, row.InstrumentSimulated)
	}
	for _, dev := range v.DeviceRows {
		base := deviceBaseType(dev.TypeCode)
		if r, ok := rowOfType[base]; ok {
			deviceOnRow[r] += dev.DeviceHours
		}
	}
	for r, hours := range deviceOnRow {
		d.putHours(SheetSummary, r, colInstDevice, hours)
	}

	// CPL sheet.
	d.putHours(SheetCPL, cplRowPICXC, cplValueCol, v.PICCrossCountry)
	d.putHours(SheetCPL, cplRowDualRecv, cplValueCol, v.DualReceived)
	d.putHours(SheetCPL, cplRowDualInst, cplValueCol, v.DualInstrument)
	if v.NightLandings > 0 {
		d.put(SheetCPL, cplRowNightLdg, cplValueCol, v.NightLandings, "0")
	}
	d.putHours(SheetCPL, cplRowNightHours, cplValueCol, v.NightHours)
	if v.LongestSoloXC.Found {
		xc := v.LongestSoloXC
		d.putHours(SheetCPL, cplRowSoloXC, cplValueCol, xc.Hours)
		d.put(SheetCPL, cplRowSoloXC, cplSoloXCDateCol, xc.Date.Format("02/01/2006"), "")
		d.put(SheetCPL, cplRowSoloXC, cplSoloXCKMCol, int(math.Round(xc.DistanceKM)), "0")
		d.put(SheetCPL, cplRowSoloXC, cplSoloXCRouteCol, xc.From+"-"+xc.To, "")
	}
	d.putHours(SheetCPL, cplRowComplex, cplValueCol, v.ComplexGroupBC)

	// CPL evidence lists.
	for i, f := range v.InstDualFlights {
		r := cplListFirstRow + i
		d.put(SheetCPL, r, cplColInstDual,
			fmt.Sprintf("%s  %.1f", f.Date.Format("02/01/2006"), round1(f.Hours)), "")
	}
	for i, f := range v.NightPICFlights {
		r := cplListFirstRow + i
		d.put(SheetCPL, r, cplColNightDate, f.Date.Format("02/01/2006"), "")
		d.put(SheetCPL, r, cplColNightHours, round1(f.Hours), "0.0")
	}
	for i, f := range v.ComplexFlights {
		r := cplListFirstRow + i
		d.put(SheetCPL, r, cplColComplexDate, f.Date.Format("02/01/2006"), "")
		d.put(SheetCPL, r, cplColComplexHours, round1(f.Hours), "0.0")
	}

	// ATPL sheet.
	d.putHours(SheetATPL, atplRowXCAllRoles, atplValueCol, v.CrossCountryAllRoles)
	d.putHours(SheetATPL, atplRowNightPICXC, atplValueCol, v.NightPICXC)
	d.putHours(SheetATPL, atplRowInstrument, atplValueCol, v.InstrumentTotal)

	return d
}

// deviceBaseType strips device suffixes and applies the known vendor
// remaps.
func deviceBaseType(code string) string {
	base := code
	for _, suffix := range []string{" SIM", " FTD", " FFS"} {
		base = strings.TrimSuffix(base, suffix)
	}
	if mapped, ok := deviceBaseTypes[base]; ok {
		return mapped
	}
	return base
}

// WriteJSON writes the document as indented JSON.
func (d *Document) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Save writes the document to a file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating form output: %w", err)
	}
	defer f.Close()

	if err := d.WriteJSON(f); err != nil {
		return fmt.Errorf("writing form output: %w", err)
	}
	return f.Close()
}
