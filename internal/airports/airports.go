// Package airports resolves great-circle distances between logbook airport
// codes from a built-in ICAO coordinate table, optionally extended with a
// user-supplied overlay file.
package airports

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Coord is a latitude/longitude pair in decimal degrees.
type Coord struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// earthRadiusNM is the mean earth radius in nautical miles.
const earthRadiusNM = 3440.065

// HaversineNM returns the great-circle distance between two coordinates in
// nautical miles, rounded to one decimal.
func HaversineNM(a, b Coord) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dlat := (b.Lat - a.Lat) * math.Pi / 180
	dlon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(h))
	return math.Round(earthRadiusNM*c*10) / 10
}

// Provider resolves distances and remembers which codes it could not find,
// so the run report can list them once instead of per row.
type Provider struct {
	mu       sync.Mutex
	table    map[string]Coord
	notFound map[string]struct{}
}

// NewProvider returns a Provider over the built-in table plus the given
// overlay entries (overlay wins on conflicts).
func NewProvider(overlay map[string]Coord) *Provider {
	table := make(map[string]Coord, len(builtinAirports)+len(overlay))
	for code, c := range builtinAirports {
		table[code] = c
	}
	for code, c := range overlay {
		table[strings.ToUpper(strings.TrimSpace(code))] = c
	}
	return &Provider{table: table, notFound: make(map[string]struct{})}
}

// LoadOverlay reads a YAML file of the form
//
//	airports:
//	  LLHA: {lat: 32.8094, lon: 35.0431}
//
// and returns its entries. A missing file is not an error.
func LoadOverlay(path string) (map[string]Coord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading airport overlay: %w", err)
	}

	var doc struct {
		Airports map[string]Coord `yaml:"airports"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing airport overlay %s: %w", path, err)
	}
	return doc.Airports, nil
}

// Distance returns the great-circle distance in NM between two airport
// codes. The second return is false when either code is unknown; a
// same-code pair is known with distance zero.
func (p *Provider) Distance(from, to string) (float64, bool) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" {
		return 0, false
	}
	if from == to {
		return 0, true
	}

	a, okA := p.table[from]
	b, okB := p.table[to]
	if !okA || !okB {
		p.mu.Lock()
		if !okA {
			p.notFound[from] = struct{}{}
		}
		if !okB {
			p.notFound[to] = struct{}{}
		}
		p.mu.Unlock()
		return 0, false
	}
	return HaversineNM(a, b), true
}

// Lookup returns the coordinates of an airport code.
func (p *Provider) Lookup(code string) (Coord, bool) {
	c, ok := p.table[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Unknown returns the sorted set of codes Distance failed to resolve.
func (p *Provider) Unknown() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.notFound))
	for code := range p.notFound {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
