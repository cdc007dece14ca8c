package form

import "caai_logbook/internal/aircraft"

// Sheet names in the regulator's workbook template.
const (
	SheetSummary = "סיכום ניסיון תעופתי"
	SheetCPL     = "רישיון טיס מסחרי"
	SheetATPL    = "רישיון טיס תובלה בנתיבי אוויר"
)

// Table 1 layout on the summary sheet: one row per aircraft type, group
// total in the group's column, role hours in fixed columns.
const (
	table1FirstRow = 13
	table1TypeCol  = 2

	colDayPIC       = 13
	colDayPICXC     = 14
	colDaySIC       = 15
	colDayStudent   = 16
	colNightPIC     = 17
	colNightPICXC   = 18
	colNightSIC     = 19
	colNightStudent = 20
)

// groupColumns maps aircraft groups to their Table 1 total column.
var groupColumns = map[aircraft.Group]int{
	aircraft.GroupA: 3,
	aircraft.GroupD: 4,
	aircraft.GroupB: 5,
	aircraft.GroupC: 6,
}

// Table 2 (instrument time) layout on the summary sheet.
const (
	table2FirstRow = 31
	colInstActual  = 3
	colInstSim     = 4
	colInstDevice  = 5
)

// CPL sheet cells.
const (
	cplValueCol = 3

	cplRowPICXC      = 12
	cplRowDualRecv   = 13
	cplRowDualInst   = 14
	cplRowNightLdg   = 15
	cplRowNightHours = 16
	cplRowSoloXC     = 17
	cplRowComplex    = 18

	cplSoloXCDateCol  = 8
	cplSoloXCKMCol    = 11
	cplSoloXCRouteCol = 14

	cplListFirstRow    = 27
	cplColInstDual     = 2
	cplColNightDate    = 3
	cplColNightHours   = 4
	cplColComplexDate  = 5
	cplColComplexHours = 6
)

// ATPL sheet cells.
const (
	atplValueCol      = 3
	atplRowXCAllRoles = 13
	atplRowNightPICXC = 14
	atplRowInstrument = 15
)

// deviceBaseTypes maps training-device type codes to the aircraft-type row
// their hours attach to on Table 2.
var deviceBaseTypes = map[string]string{
	"FRASCA":             "C172",
	"A320":               "A319",
	"FLIGHT SAFETY":      "H25B",
	"ATP - CTP TRAINING": "A319",
}
