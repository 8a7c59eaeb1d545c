package sim

import (
	"math"

	"dimensional/internal/geometry/vector"
	"dimensional/si"
	"dimensional/units"
)

// GeoRef anchors the local ENU frame at a geodetic origin.
type GeoRef struct {
	OriginLat si.Angle
	OriginLon si.Angle
}

// lengthPerDegLat is the north-south distance covered by one degree of latitude.
var lengthPerDegLat = units.Meter.Scale(111_320)

func (g GeoRef) lengthPerDegLon() si.Length {
	return lengthPerDegLat.Scale(math.Cos(g.OriginLat.Value()))
}

func (g GeoRef) GeoToLocal(lat, lon si.Angle, alt si.Length) vector.Position {
	dLat := lat.Sub(g.OriginLat).Ratio(units.Degree)
	dLon := lon.Sub(g.OriginLon).Ratio(units.Degree)
	return vector.Position{
		X: g.lengthPerDegLon().Scale(dLon), // east
		Y: lengthPerDegLat.Scale(dLat),     // north
		Z: alt,
	}
}

func (g GeoRef) LocalToGeo(p vector.Position) (lat, lon si.Angle, alt si.Length) {
	lat = g.OriginLat.Add(units.Degree.Scale(p.Y.Ratio(lengthPerDegLat)))
	lon = g.OriginLon.Add(units.Degree.Scale(p.X.Ratio(g.lengthPerDegLon())))
	alt = p.Z
	return
}

// HeadingFromVec returns the ground track of v in [0, 2π), clockwise from north.
func HeadingFromVec(v vector.Velocity) si.Angle {
	// Heading: 0=north, π/2=east
	x, y := v.X.Value(), v.Y.Value()
	if math.Abs(x) < 1e-9 && math.Abs(y) < 1e-9 {
		return si.Angle{}
	}
	rad := math.Atan2(x, y)
	if rad < 0 {
		rad += 2 * math.Pi
	}
	return units.Radian.Scale(rad)
}
