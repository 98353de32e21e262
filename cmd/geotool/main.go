// Command geotool exercises the geo library from the command line: distance
// and travel-time estimates, geohash encoding/decoding, and pixelation or
// KML export of YAML-defined regions.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/dpup/geo"
	"github.com/dpup/geo/area"
	"github.com/dpup/geo/geohash"
	"github.com/dpup/geo/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch command := os.Args[1]; command {
	case "distance":
		handleDistance()
	case "travel-time":
		handleTravelTime()
	case "encode":
		handleEncode()
	case "decode":
		handleDecode()
	case "pixelate":
		handlePixelate()
	case "kml":
		handleKML()
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("geotool - geographic region and geohash utilities")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  distance     --lat1 --lon1 --lat2 --lon2   Planar distance between two points")
	fmt.Println("  travel-time  --lat1 --lon1 --lat2 --lon2   Estimated minimum road travel time")
	fmt.Println("  encode       --lat --lon [--bits 30]       Encode a point as a geohash")
	fmt.Println("  decode       --hash                        Decode a geohash to its cell center")
	fmt.Println("  pixelate     --regions file.yaml           Print pixelation of each region")
	fmt.Println("  kml          --regions file.yaml           Write regions as KML to stdout")
}

func pointFlags(fs *flag.FlagSet) (lat1, lon1, lat2, lon2 *float64) {
	lat1 = fs.Float64("lat1", 0, "Latitude of first point")
	lon1 = fs.Float64("lon1", 0, "Longitude of first point")
	lat2 = fs.Float64("lat2", 0, "Latitude of second point")
	lon2 = fs.Float64("lon2", 0, "Longitude of second point")
	return
}

func handleDistance() {
	fs := flag.NewFlagSet("distance", flag.ExitOnError)
	lat1, lon1, lat2, lon2 := pointFlags(fs)
	fs.Parse(os.Args[2:])

	p1, p2 := mustPoint(*lat1, *lon1), mustPoint(*lat2, *lon2)
	distance := geo.DistanceInMeters(p1, p2)

	fmt.Printf("Distance between (%.6f, %.6f) and (%.6f, %.6f):\n",
		p1.Lat(), p1.Lon(), p2.Lat(), p2.Lon())
	fmt.Printf("  %.2f meters (%.2f km)\n", distance, distance/1000)
}

func handleTravelTime() {
	fs := flag.NewFlagSet("travel-time", flag.ExitOnError)
	lat1, lon1, lat2, lon2 := pointFlags(fs)
	round := fs.Float64("round", 1, "Round distance to this many meters first")
	fs.Parse(os.Args[2:])

	p1, p2 := mustPoint(*lat1, *lon1), mustPoint(*lat2, *lon2)
	eta := geo.EstimatedMinTravelTime(p1, p2, *round)

	fmt.Printf("Estimated minimum travel time: %s\n", eta)
}

func handleEncode() {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "Latitude")
	lon := fs.Float64("lon", 0, "Longitude")
	bits := fs.Int("bits", geohash.DefaultBitsPerAxis, "Bits per axis (1-32)")
	fs.Parse(os.Args[2:])

	h, err := geohash.EncodeWithPrecision(mustPoint(*lat, *lon), *bits)
	if err != nil {
		log.Fatalf("Error encoding: %v", err)
	}
	center := h.Point()
	fmt.Printf("Geohash: %s\n", h.Hash())
	fmt.Printf("Cell center: (%.7f, %.7f)\n", center.Lat(), center.Lon())
}

func handleDecode() {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	hash := fs.String("hash", "", "Geohash string")
	fs.Parse(os.Args[2:])

	p, err := geohash.Decode(*hash)
	if err != nil {
		log.Fatalf("Error decoding: %v", err)
	}
	fmt.Printf("Cell center: (%.7f, %.7f)\n", p.Lat(), p.Lon())
}

func handlePixelate() {
	fs := flag.NewFlagSet("pixelate", flag.ExitOnError)
	path := fs.String("regions", "", "Region YAML file")
	fs.Parse(os.Args[2:])

	areas := loadRegions(*path)
	names := make([]string, 0, len(areas))
	for name := range areas {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s:\n", name)
		for _, r := range areas[name].Pixelate() {
			sw, ne := r.SouthWest(), r.NorthEast()
			fmt.Printf("  sw=(%.6f, %.6f) ne=(%.6f, %.6f)\n",
				sw.Lat(), sw.Lon(), ne.Lat(), ne.Lon())
		}
	}
}

func handleKML() {
	fs := flag.NewFlagSet("kml", flag.ExitOnError)
	path := fs.String("regions", "", "Region YAML file")
	fs.Parse(os.Args[2:])

	if err := area.WriteKML(os.Stdout, loadRegions(*path)); err != nil {
		log.Fatalf("Error writing KML: %v", err)
	}
}

func loadRegions(path string) map[string]area.Area {
	if path == "" {
		log.Fatal("--regions is required")
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Error loading regions: %v", err)
	}
	areas, err := cfg.Build()
	if err != nil {
		log.Fatalf("Error building regions: %v", err)
	}
	if len(areas) == 0 {
		log.Fatalf("No regions defined in %s", path)
	}
	return areas
}

func mustPoint(lat, lon float64) geo.Point {
	p, err := geo.NewPoint(lat, lon)
	if err != nil {
		log.Fatalf("Invalid coordinates (%v, %v): %v", lat, lon, err)
	}
	return p
}
