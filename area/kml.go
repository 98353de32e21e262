package area

import (
	"fmt"
	"io"

	kml "github.com/twpayne/go-kml/v2"
)

// WriteKML renders the pixelation of each named region as KML polygon
// placemarks, one per rectangle. Useful for eyeballing regions and their
// antimeridian splits on a map viewer.
func WriteKML(w io.Writer, regions map[string]Area) error {
	doc := kml.Document(kml.Name("regions"))
	for name, a := range regions {
		for i, r := range a.Pixelate() {
			doc.Add(
				kml.Placemark(
					kml.Name(fmt.Sprintf("%s/%d", name, i)),
					kml.Polygon(
						kml.OuterBoundaryIs(
							kml.LinearRing(
								kml.Coordinates(rectangleRing(r)...),
							),
						),
					),
				),
			)
		}
	}
	return kml.KML(doc).WriteIndent(w, "", "  ")
}

// rectangleRing returns the closed counter-clockwise ring of a non-wrapped
// rectangle's corners.
func rectangleRing(r Rectangle) []kml.Coordinate {
	sw, ne := r.SouthWest(), r.NorthEast()
	return []kml.Coordinate{
		{Lon: sw.Lon(), Lat: sw.Lat()},
		{Lon: ne.Lon(), Lat: sw.Lat()},
		{Lon: ne.Lon(), Lat: ne.Lat()},
		{Lon: sw.Lon(), Lat: ne.Lat()},
		{Lon: sw.Lon(), Lat: sw.Lat()},
	}
}
