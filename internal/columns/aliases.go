package columns

import (
	"regexp"
	"strings"

	"caai_logbook/internal/logbook"
)

// headerAliases maps each canonical field to its known header spellings,
// collected from ForeFlight, Safelog, LogTen and Hebrew paper logbooks.
// Aliases are matched case-insensitively after normalization; within a
// field, more specific aliases come before generic ones because the first
// match wins.
var headerAliases = map[logbook.CanonicalField][]string{
	logbook.FieldDate: {
		"date", "flight date", "flt date", "flight_date",
		"dep date", "departure date",
		"תאריך",
	},
	logbook.FieldFrom: {
		"from", "departure", "dep", "origin", "route from",
		"dep airport", "departure airport", "depart",
		"מ-", "ממקום",
	},
	logbook.FieldTo: {
		"to", "arrival", "arr", "dest", "destination", "route to",
		"arr airport", "arrival airport",
		"ל-", "למקום",
	},
	logbook.FieldRegistration: {
		"registration", "reg", "tail", "tail number", "tail no",
		"aircraft id", "ident", "aircraft ident", "a/c reg",
		"tail #", "n-number",
		"רישום", "סימן קריאה",
	},
	logbook.FieldAircraftType: {
		"aircraft type", "type", "type code", "a/c type",
		"make/model", "aircraft", "ac type", "airplane type",
		"דגם כלי טיס", "דגם", "סוג מטוס",
	},
	logbook.FieldEngineType: {
		"engine type", "engine", "eng type", "powerplant",
		"סוג מנוע",
	},
	logbook.FieldClass: {
		"class", "aircraft class", "a/c class",
		"סיווג",
	},
	logbook.FieldTotalTime: {
		"total time", "total", "total flight time", "duration",
		"flight time", "block time", "total duration", "ttl time",
		"total hrs", "flight hours",
		"סה\"כ זמן", "זמן טיסה", "סה\"כ",
	},
	logbook.FieldPIC: {
		"pic", "pilot in command", "p1", "pic time",
		"pic hours", "command",
		"טייס אחראי", "מפקד",
	},
	logbook.FieldSIC: {
		"sic", "second in command", "co-pilot", "copilot",
		"p2", "sic time", "sic hours", "first officer",
		"טייס משנה",
	},
	logbook.FieldNight: {
		"night", "night time", "night hours", "nite",
		"לילה",
	},
	logbook.FieldCrossCountry: {
		"cross country", "xc", "x-country", "cc",
		"cross-country", "xcountry", "xc time",
		"חוצה ארץ",
	},
	logbook.FieldActualInstrument: {
		"actual instrument", "actual inst", "actual ifr",
		"act inst", "actual imc", "imc",
		"מכשירים בפועל",
	},
	logbook.FieldSimulatedInstrument: {
		"simulated instrument", "sim inst", "hood",
		"sim ifr", "simulated inst", "sim instrument",
		"מכשירים מדומה",
	},
	logbook.FieldDualReceived: {
		"dual received", "dual recv", "dual",
		"instruction received", "dual rcvd", "training received",
		"הדרכה שהתקבלה",
	},
	logbook.FieldDualGiven: {
		"dual given", "instruction given", "cfi time",
		"instructor time", "dual gvn", "training given",
		"הדרכה שניתנה",
	},
	logbook.FieldSolo: {
		"solo", "solo time", "solo hours",
		"סולו",
	},
	logbook.FieldSimulator: {
		"simulator", "sim", "ftd", "ffs", "sim time",
		"training device", "flight sim",
		"סימולטור",
	},
	logbook.FieldMultiPilot: {
		"multi-pilot", "multi pilot", "multipilot", "multi crew",
		"multi-crew", "multicrew", "mp",
		"רב טייס",
	},
	logbook.FieldDayLandings: {
		"day landings", "day ldg", "ldg day",
		"day land", "landings day", "day ldgs",
		"נחיתות יום",
	},
	logbook.FieldNightLandings: {
		"night landings", "night ldg", "ldg night",
		"night land", "landings night", "night ldgs",
		"נחיתות לילה",
	},
	logbook.FieldInstructor: {
		"instructor", "cfi name", "instructor name",
		"flight instructor",
		"מדריך",
	},
	logbook.FieldRemarks: {
		"remarks", "comments", "notes", "remark",
		"הערות",
	},
	logbook.FieldDistance: {
		"distance", "distance (nm)", "dist", "nm",
		"distance nm", "nautical miles",
		"מרחק",
	},
}

// nonWord strips punctuation while keeping Latin, Hebrew, digits and spaces.
var nonWord = regexp.MustCompile(`[^\w\s\x{0590}-\x{05FF}]`)
var multiSpace = regexp.MustCompile(`\s+`)

// normalizeHeader prepares a header or alias for matching: lowercase,
// punctuation stripped, whitespace collapsed.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = nonWord.ReplaceAllString(h, " ")
	h = multiSpace.ReplaceAllString(h, " ")
	return strings.TrimSpace(h)
}
