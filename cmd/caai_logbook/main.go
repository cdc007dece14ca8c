// Command-line entry point for the logbook-to-form converter.
//
// The tool reads a flight logbook export (generic CSV/TSV or a LogTen Pro
// tab-delimited export), classifies every flight under the CAAI crediting
// rules and produces the cell values of the flight-hours summary form.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"caai_logbook/internal/aggregate"
	"caai_logbook/internal/airports"
	"caai_logbook/internal/api"
	"caai_logbook/internal/columns"
	"caai_logbook/internal/config"
	"caai_logbook/internal/form"
	"caai_logbook/internal/pipeline"
	"caai_logbook/internal/readers"
	_ "caai_logbook/internal/readers/delimited" // register readers via init()
	_ "caai_logbook/internal/readers/logten"
	"caai_logbook/internal/storage"
)

func usage(w io.Writer) {
	fmt.Fprintln(w, "caai_logbook - commands:")
	fmt.Fprintln(w, "  convert  - convert a logbook export into form cell values")
	fmt.Fprintln(w, "  analyze  - print an hours analysis without writing a form")
	fmt.Fprintln(w, "  serve    - serve stored runs over HTTP")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  caai_logbook convert -input logbook.csv [-output form.json] [-save]")
	fmt.Fprintln(w, "  caai_logbook analyze -input logbook.csv")
	fmt.Fprintln(w, "  caai_logbook serve [-port 8080] [-api-key KEY]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Common flags:")
	fmt.Fprintln(w, "  -config FILE    YAML configuration (pilot, paths, server)")
	fmt.Fprintln(w, "  -columns FILE   explicit column mapping overrides")
	fmt.Fprintln(w, "  -airports FILE  extra airport coordinates")
	fmt.Fprintln(w, "")
}

func main() {
	if len(os.Args) < 2 {
		usage(os.Stderr)
		os.Exit(2)
	}
	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "convert":
		runConvert(os.Args[2:])
	case "analyze":
		runAnalyze(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "-h", "--help", "help":
		usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		usage(os.Stderr)
		os.Exit(2)
	}
}

// runPipeline handles the parts convert and analyze share: config, column
// overrides, airport data and the run itself.
func runPipeline(input, configPath, columnsPath, airportsPath string, verbose bool) (*pipeline.Result, *config.Config) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if columnsPath == "" {
		columnsPath = cfg.Paths.Columns
	}
	if airportsPath == "" {
		airportsPath = cfg.Paths.Airports
	}

	var explicit columns.ExplicitMapping
	if columnsPath != "" {
		explicit, err = columns.LoadExplicitMapping(columnsPath)
		if err != nil {
			log.Fatalf("column mapping: %v", err)
		}
	}

	overlay, err := airports.LoadOverlay(airportsPath)
	if err != nil {
		log.Fatalf("airports: %v", err)
	}
	provider := airports.NewProvider(overlay)

	table, err := readers.Open(input)
	if err != nil {
		log.Fatalf("input: %v", err)
	}
	log.Printf("read %d rows from %s (%s format)", len(table.Rows), input, table.Format)

	res, err := pipeline.Run(table, pipeline.Options{
		Explicit:        explicit,
		Distance:        provider.Distance,
		UnknownAirports: provider.Unknown,
		Verbose:         verbose,
	})
	if err != nil {
		fmt.Fprint(os.Stderr, res.Report.Summary())
		log.Fatalf("run failed: %v", err)
	}
	return res, cfg
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	input := fs.String("input", "", "Logbook export file (required)")
	output := fs.String("output", "", "Form output file (default: <input>.form.json)")
	configPath := fs.String("config", "", "YAML configuration file")
	columnsPath := fs.String("columns", "", "Explicit column mapping file")
	airportsPath := fs.String("airports", "", "Extra airport coordinates file")
	save := fs.Bool("save", false, "Store the run in the database")
	verbose := fs.Bool("verbose", false, "Log per-row rejections")
	_ = fs.Parse(args)

	if *input == "" {
		fs.Usage()
		os.Exit(2)
	}
	if *output == "" {
		*output = *input + ".form.json"
	}

	res, cfg := runPipeline(*input, *configPath, *columnsPath, *airportsPath, *verbose)
	fmt.Fprint(os.Stderr, res.Report.Summary())

	doc := form.Build(res.Values)
	if err := doc.Save(*output); err != nil {
		log.Fatalf("output: %v", err)
	}
	log.Printf("form written to %s (%d cells)", *output, len(doc.Cells))

	if *save {
		db, err := storage.Open(cfg.Paths.Database)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		if err := db.SaveRun(res); err != nil {
			log.Fatalf("save run: %v", err)
		}
		log.Printf("run %s stored in %s", res.Report.ID, cfg.Paths.Database)
	}
}

func runAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	input := fs.String("input", "", "Logbook export file (required)")
	configPath := fs.String("config", "", "YAML configuration file")
	columnsPath := fs.String("columns", "", "Explicit column mapping file")
	airportsPath := fs.String("airports", "", "Extra airport coordinates file")
	verbose := fs.Bool("verbose", false, "Log per-row rejections")
	_ = fs.Parse(args)

	if *input == "" {
		fs.Usage()
		os.Exit(2)
	}

	res, _ := runPipeline(*input, *configPath, *columnsPath, *airportsPath, *verbose)
	printAnalysis(os.Stdout, res)
}

func printAnalysis(w io.Writer, res *pipeline.Result) {
	v := res.Values

	fmt.Fprintf(w, "Flights counted: %d  (total %.1f hrs)\n\n", v.Flights, v.TotalTime)

	fmt.Fprintln(w, "Group totals (PIC + SIC + Student):")
	for _, g := range v.GroupRows {
		fmt.Fprintf(w, "  group %s (%s)  %8.1f   dPIC=%.1f dSIC=%.1f dSTD=%.1f nPIC=%.1f nSIC=%.1f nSTD=%.1f\n",
			g.GroupID, g.Letter, g.FormTotal,
			g.DayPIC, g.DaySIC, g.DayStudent,
			g.NightPIC, g.NightSIC, g.NightStudent)
	}

	fmt.Fprintln(w, "\nAircraft types:")
	for _, t := range v.TypeRows {
		fmt.Fprintf(w, "  %-12s %s  total=%.1f form=%.1f\n", t.TypeCode, t.GroupID, t.TotalTime, t.FormTotal)
	}
	for _, t := range v.DeviceRows {
		fmt.Fprintf(w, "  %-12s device  %.1f hrs (not in Table 1)\n", t.TypeCode, t.DeviceHours)
	}

	fmt.Fprintf(w, "\nPIC: %.1f  SIC: %.1f  Student: %.1f\n", v.PIC, v.SIC, v.Student)
	fmt.Fprintf(w, "Form total (PIC+SIC+Student): %.1f\n", v.FormTotal)
	fmt.Fprintf(w, "Grand total (SIC half-credit): %.1f\n", v.GrandTotal)
	fmt.Fprintf(w, "Safety pilot excluded: %.1f hrs\n", v.SafetyExcluded)
	fmt.Fprintf(w, "Night: %.1f  Night PIC: %.1f  Night PIC XC: %.1f\n", v.NightHours, v.NightPIC, v.NightPICXC)
	fmt.Fprintf(w, "Cross-country: PIC %.1f, all roles %.1f\n", v.PICCrossCountry, v.CrossCountryAllRoles)
	fmt.Fprintf(w, "Instrument: actual %.1f, simulated %.1f, device %.1f\n",
		v.InstrumentActual, v.InstrumentSimulated, v.DeviceHours)
	fmt.Fprintf(w, "Dual received: %.1f (instrument %.1f)\n", v.DualReceived, v.DualInstrument)
	fmt.Fprintf(w, "Solo: %.1f (cross-country %.1f)\n", v.Solo, v.SoloXC)
	fmt.Fprintf(w, "Multi-engine: %.1f\n", v.MultiEngineTime)
	fmt.Fprintf(w, "Landings: %d day, %d night\n", v.DayLandings, v.NightLandings)

	if v.LongestSoloXC.Found {
		xc := v.LongestSoloXC
		fmt.Fprintf(w, "Longest solo XC: %.1f hrs %s-%s on %s (%.0f km)\n",
			xc.Hours, xc.From, xc.To, xc.Date.Format("02/01/2006"), xc.DistanceKM)
	}

	if len(v.UnresolvedTypes) > 0 {
		types := make([]string, 0, len(v.UnresolvedTypes))
		for t := range v.UnresolvedTypes {
			types = append(types, t)
		}
		sort.Strings(types)
		fmt.Fprintln(w, "\nUnresolved aircraft types (hours not bucketed):")
		for _, t := range types {
			fmt.Fprintf(w, "  %-12s %.1f hrs\n", t, v.UnresolvedTypes[t])
		}
	}

	if len(v.TruncatedTypes) > 0 {
		fmt.Fprintf(w, "\nWARNING: more aircraft types than Table 1 rows, omitted: %s\n",
			strings.Join(v.TruncatedTypes, ", "))
	}

	printChecks(w, v)

	fmt.Fprint(w, "\n", res.Report.Summary())
}

// printChecks verifies the arithmetic relations between the totals, so a
// reviewer can confirm the form is internally consistent before submitting.
func printChecks(w io.Writer, v *aggregate.FormValues) {
	fmt.Fprintln(w, "\nConsistency checks:")

	check := func(name string, got, want float64) {
		if diff := got - want; diff > 0.05 || diff < -0.05 {
			fmt.Fprintf(w, "  MISMATCH %s: %.1f vs %.1f\n", name, got, want)
			return
		}
		fmt.Fprintf(w, "  ok       %s: %.1f\n", name, got)
	}

	var groupSum float64
	for _, g := range v.GroupRows {
		groupSum += g.FormTotal
	}
	check("group totals vs form total", groupSum, v.FormTotal)
	check("PIC+SIC+Student vs form total", v.PIC+v.SIC+v.Student, v.FormTotal)
	check("grand total (half SIC)", v.PIC+v.SIC/2+v.Student, v.GrandTotal)
	check("night PIC XC within night PIC", min(v.NightPICXC, v.NightPIC), v.NightPICXC)
	check("PIC XC within PIC", min(v.PICCrossCountry, v.PIC), v.PICCrossCountry)
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "YAML configuration file")
	port := fs.Int("port", 0, "Listen port (overrides config)")
	dbPath := fs.String("db", "", "Run database (overrides config)")
	apiKey := fs.String("api-key", "", "Require this API key (overrides config)")
	_ = fs.Parse(args)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Paths.Database = *dbPath
	}
	if *apiKey != "" {
		cfg.Server.APIKey = *apiKey
	}

	db, err := storage.Open(cfg.Paths.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	srv := api.NewServer(db, api.Config{
		Port:        cfg.Server.Port,
		AuthEnabled: cfg.Server.APIKey != "",
		APIKeys:     []string{cfg.Server.APIKey},
	})
	log.Fatal(srv.Run())
}
