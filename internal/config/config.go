// Package config loads named region definitions from YAML files for the
// geotool command. A region is an area expression: a rectangle or circle
// leaf, or a union/difference/intersection/inverse over nested regions.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dpup/geo"
	"github.com/dpup/geo/area"
)

// Config is the root of a region file.
type Config struct {
	Regions []Region `yaml:"regions"`
}

// Region is one named area expression. Exactly one of the shape fields must
// be set.
type Region struct {
	Name         string      `yaml:"name"`
	Rectangle    *RectSpec   `yaml:"rectangle,omitempty"`
	Circle       *CircleSpec `yaml:"circle,omitempty"`
	Union        []Region    `yaml:"union,omitempty"`
	Difference   *DiffSpec   `yaml:"difference,omitempty"`
	Intersection []Region    `yaml:"intersection,omitempty"`
	Inverse      *Region     `yaml:"inverse,omitempty"`
}

// RectSpec is a rectangle by its corners. A south-west longitude greater
// than the north-east longitude expresses antimeridian wraparound.
type RectSpec struct {
	SouthWest CoordSpec `yaml:"south_west"`
	NorthEast CoordSpec `yaml:"north_east"`
}

// CircleSpec is a circle by center and radius.
type CircleSpec struct {
	Center       CoordSpec `yaml:"center"`
	RadiusMeters float64   `yaml:"radius_meters"`
}

// DiffSpec subtracts one region from another.
type DiffSpec struct {
	Base     Region `yaml:"base"`
	Subtract Region `yaml:"subtract"`
}

// CoordSpec is a lat/lon pair.
type CoordSpec struct {
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Load reads and parses a region file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses region file contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing regions: %w", err)
	}
	return &cfg, nil
}

// Build converts every region definition into an Area, keyed by name.
func (c *Config) Build() (map[string]area.Area, error) {
	out := make(map[string]area.Area, len(c.Regions))
	for _, r := range c.Regions {
		if r.Name == "" {
			return nil, fmt.Errorf("config: region without a name")
		}
		a, err := r.Build()
		if err != nil {
			return nil, fmt.Errorf("config: region %q: %w", r.Name, err)
		}
		out[r.Name] = a
	}
	return out, nil
}

// Build converts one region definition into an Area.
func (r Region) Build() (area.Area, error) {
	switch {
	case r.Rectangle != nil:
		sw, err := r.Rectangle.SouthWest.point()
		if err != nil {
			return nil, err
		}
		ne, err := r.Rectangle.NorthEast.point()
		if err != nil {
			return nil, err
		}
		return area.NewRectangle(sw, ne), nil

	case r.Circle != nil:
		center, err := r.Circle.Center.point()
		if err != nil {
			return nil, err
		}
		return area.NewCircle(center, r.Circle.RadiusMeters)

	case len(r.Union) > 0:
		areas, err := buildList(r.Union)
		if err != nil {
			return nil, err
		}
		return area.FromAreas(areas)

	case r.Difference != nil:
		base, err := r.Difference.Base.Build()
		if err != nil {
			return nil, err
		}
		subtract, err := r.Difference.Subtract.Build()
		if err != nil {
			return nil, err
		}
		return area.NewDifference(base, subtract), nil

	case len(r.Intersection) > 0:
		areas, err := buildList(r.Intersection)
		if err != nil {
			return nil, err
		}
		combined := areas[0]
		for _, a := range areas[1:] {
			next, err := area.NewIntersection(combined, a)
			if err != nil {
				return nil, err
			}
			combined = next
		}
		return combined, nil

	case r.Inverse != nil:
		inner, err := r.Inverse.Build()
		if err != nil {
			return nil, err
		}
		return area.NewInverse(inner)

	default:
		return nil, fmt.Errorf("one of rectangle, circle, union, difference, intersection or inverse is required")
	}
}

func buildList(regions []Region) ([]area.Area, error) {
	areas := make([]area.Area, len(regions))
	for i, r := range regions {
		a, err := r.Build()
		if err != nil {
			return nil, err
		}
		areas[i] = a
	}
	return areas, nil
}

func (c CoordSpec) point() (geo.Point, error) {
	return geo.NewPoint(c.Latitude, c.Longitude)
}
