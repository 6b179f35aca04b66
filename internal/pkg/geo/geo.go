package geo

import "math"

const earthRadius = 6371000 // meters

// Distance returns the great-circle distance in meters between two WGS84
// points using the Haversine formula. Inputs are not range-checked.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

type Point struct {
	Latitude  float64
	Longitude float64
}

// Site is a circular geofence.
type Site struct {
	ID        string
	Latitude  float64
	Longitude float64
	Radius    float64
}

type Match struct {
	Site           Site
	Index          int
	Distance       float64
	WithinGeofence bool
}

// FindClosest scans sites in order and returns the nearest one. Ties keep the
// earlier site. ok is false only when sites is empty.
func FindClosest(p Point, sites []Site) (Match, bool) {
	if len(sites) == 0 {
		return Match{}, false
	}

	best := Match{Index: -1, Distance: math.Inf(1)}
	for i, s := range sites {
		d := Distance(p.Latitude, p.Longitude, s.Latitude, s.Longitude)
		if d < best.Distance {
			best = Match{Site: s, Index: i, Distance: d}
		}
	}
	// NaN coordinates never compare less; fall back to the first site.
	if best.Index < 0 {
		best = Match{Site: sites[0], Index: 0, Distance: Distance(p.Latitude, p.Longitude, sites[0].Latitude, sites[0].Longitude)}
	}
	best.WithinGeofence = best.Distance <= best.Site.Radius
	return best, true
}
