package schema

// GeoJSON is a GeoJSON point stored in mongodb for 2dsphere queries.
// Coordinates are in [longitude, latitude] order.
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// Location is a latitude/longitude pair reported by a client device.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty"`
}

// NewGeoJSONPoint converts a client-reported location into its stored form.
func NewGeoJSONPoint(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// ToLocation converts a stored point back into a latitude/longitude pair.
func (g GeoJSON) ToLocation() Location {
	if len(g.Coordinates) != 2 {
		return Location{}
	}
	return Location{
		Latitude:  g.Coordinates[1],
		Longitude: g.Coordinates[0],
	}
}
