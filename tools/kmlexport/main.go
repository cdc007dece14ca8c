// Package main provides a tool to export a stored run's flight routes to
// KML format. KML (Keyhole Markup Language) files can be viewed in Google
// Earth, Google Maps, and other mapping applications.
package main

import (
	"encoding/xml"
	"flag"
	"fmt"
	"os"
	"sort"

	"caai_logbook/internal/airports"
	"caai_logbook/internal/storage"
)

// KML structures for XML marshalling.
// These follow the KML 2.2 specification: https://developers.google.com/kml/documentation/kmlreference

// KML is the root element of a KML document.
type KML struct {
	XMLName   xml.Name `xml:"kml"`
	Namespace string   `xml:"xmlns,attr"`
	Document  Document `xml:"Document"`
}

// Document contains the document metadata and features.
type Document struct {
	Name        string      `xml:"name"`
	Description string      `xml:"description,omitempty"`
	Styles      []Style     `xml:"Style,omitempty"`
	Placemarks  []Placemark `xml:"Placemark"`
}

// Style defines the visual appearance of features.
type Style struct {
	ID        string     `xml:"id,attr"`
	IconStyle *IconStyle `xml:"IconStyle,omitempty"`
	LineStyle *LineStyle `xml:"LineStyle,omitempty"`
}

// IconStyle defines how icons are displayed.
type IconStyle struct {
	Scale float64 `xml:"scale,omitempty"`
	Icon  Icon    `xml:"Icon"`
}

// LineStyle defines how route lines are displayed.
type LineStyle struct {
	Color string `xml:"color,omitempty"`
	Width int    `xml:"width,omitempty"`
}

// Icon specifies the icon image.
type Icon struct {
	Href string `xml:"href"`
}

// Placemark represents a geographic feature with geometry and metadata.
type Placemark struct {
	Name         string        `xml:"name"`
	Description  string        `xml:"description,omitempty"`
	StyleURL     string        `xml:"styleUrl,omitempty"`
	Point        *Point        `xml:"Point,omitempty"`
	LineString   *LineString   `xml:"LineString,omitempty"`
	ExtendedData *ExtendedData `xml:"ExtendedData,omitempty"`
}

// Point represents a geographic location.
type Point struct {
	Coordinates string `xml:"coordinates"` // Format: lon,lat,altitude
}

// LineString represents a route leg as a sequence of coordinates.
type LineString struct {
	Tessellate  int    `xml:"tessellate"`
	Coordinates string `xml:"coordinates"`
}

// ExtendedData holds custom data associated with a placemark.
type ExtendedData struct {
	Data []Data `xml:"Data"`
}

// Data represents a single piece of extended data.
type Data struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value"`
}

// leg is one airport pair with the flights flown on it.
type leg struct {
	From, To string
	Flights  int
	Hours    float64
}

func main() {
	dbPath := flag.String("db", "runs.db", "Run database file")
	runID := flag.String("run", "", "Run ID to export (required)")
	airportsPath := flag.String("airports", "", "Optional airport coordinate overlay (YAML)")
	output := flag.String("output", "", "Output KML file (default: stdout)")
	verbose := flag.Bool("v", false, "Verbose output")

	flag.Parse()

	if *runID == "" {
		fmt.Fprintf(os.Stderr, "Usage: kmlexport -run <id> [-db runs.db] [-output routes.kml]\n")
		os.Exit(2)
	}

	db, err := storage.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	run, err := db.GetRun(*runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying run: %v\n", err)
		os.Exit(1)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Run %s not found\n", *runID)
		os.Exit(1)
	}

	flights, err := db.FlightsForRun(*runID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying flights: %v\n", err)
		os.Exit(1)
	}
	if len(flights) == 0 {
		fmt.Fprintf(os.Stderr, "Run %s has no flights\n", *runID)
		os.Exit(0)
	}

	overlay, err := airports.LoadOverlay(*airportsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading airport overlay: %v\n", err)
		os.Exit(1)
	}
	provider := airports.NewProvider(overlay)

	kml, skipped := generateKML(run, flights, provider)
	if *verbose {
		fmt.Fprintf(os.Stderr, "Exporting %d flights (%d legs without coordinates skipped)\n",
			len(flights), skipped)
	}

	xmlData, err := xml.MarshalIndent(kml, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating KML: %v\n", err)
		os.Exit(1)
	}
	xmlOutput := xml.Header + string(xmlData)

	if *output != "" {
		if err := os.WriteFile(*output, []byte(xmlOutput), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
			os.Exit(1)
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "Wrote %s\n", *output)
		}
	} else {
		fmt.Println(xmlOutput)
	}
}

// generateKML builds a KML document with one placemark per visited airport
// and one line per flown leg. Legs whose airports have no known coordinates
// are counted and skipped.
func generateKML(run *storage.Run, flights []storage.StoredFlight, provider *airports.Provider) (KML, int) {
	legs := make(map[[2]string]*leg)
	visited := make(map[string]int)
	skipped := 0

	for _, f := range flights {
		if f.From == "" || f.To == "" {
			skipped++
			continue
		}
		visited[f.From]++
		visited[f.To]++

		key := [2]string{f.From, f.To}
		if f.From == f.To {
			continue // Local flight, no line to draw.
		}
		l, ok := legs[key]
		if !ok {
			l = &leg{From: f.From, To: f.To}
			legs[key] = l
		}
		l.Flights++
		l.Hours += f.TotalTime
	}

	var placemarks []Placemark

	codes := make([]string, 0, len(visited))
	for code := range visited {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		c, ok := provider.Lookup(code)
		if !ok {
			skipped++
			continue
		}
		placemarks = append(placemarks, Placemark{
			Name:        code,
			Description: fmt.Sprintf("Visits: %d", visited[code]),
			StyleURL:    "#airportStyle",
			Point:       &Point{Coordinates: fmt.Sprintf("%.6f,%.6f,0", c.Lon, c.Lat)},
			ExtendedData: &ExtendedData{
				Data: []Data{
					{Name: "visits", Value: fmt.Sprintf("%d", visited[code])},
				},
			},
		})
	}

	legKeys := make([][2]string, 0, len(legs))
	for key := range legs {
		legKeys = append(legKeys, key)
	}
	sort.Slice(legKeys, func(i, j int) bool {
		if legKeys[i][0] != legKeys[j][0] {
			return legKeys[i][0] < legKeys[j][0]
		}
		return legKeys[i][1] < legKeys[j][1]
	})

	for _, key := range legKeys {
		l := legs[key]
		a, okA := provider.Lookup(l.From)
		b, okB := provider.Lookup(l.To)
		if !okA || !okB {
			skipped++
			continue
		}
		placemarks = append(placemarks, Placemark{
			Name:        l.From + "-" + l.To,
			Description: fmt.Sprintf("Flights: %d\nHours: %.1f", l.Flights, l.Hours),
			StyleURL:    "#legStyle",
			LineString: &LineString{
				Tessellate: 1,
				Coordinates: fmt.Sprintf("%.6f,%.6f,0 %.6f,%.6f,0",
					a.Lon, a.Lat, b.Lon, b.Lat),
			},
			ExtendedData: &ExtendedData{
				Data: []Data{
					{Name: "flights", Value: fmt.Sprintf("%d", l.Flights)},
					{Name: "hours", Value: fmt.Sprintf("%.1f", l.Hours)},
				},
			},
		})
	}

	return KML{
		Namespace: "http://www.opengis.net/kml/2.2",
		Document: Document{
			Name:        "Logbook routes",
			Description: fmt.Sprintf("Flight routes from %s (%d flights).", run.Source, len(flights)),
			Styles: []Style{
				{
					ID: "airportStyle",
					IconStyle: &IconStyle{
						Scale: 0.8,
						Icon: Icon{
							Href: "http://maps.google.com/mapfiles/kml/shapes/triangle.png",
						},
					},
				},
				{
					ID:        "legStyle",
					LineStyle: &LineStyle{Color: "ff0088ff", Width: 2},
				},
			},
			Placemarks: placemarks,
		},
	}, skipped
}
