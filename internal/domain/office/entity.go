package office

import (
	"time"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/pkg/geo"
)

const DefaultRadius = 50.0

type Office struct {
	ID        string
	Name      string
	Latitude  float64
	Longitude float64
	Radius    float64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (o Office) Site() geo.Site {
	return geo.Site{
		ID:        o.ID,
		Latitude:  o.Latitude,
		Longitude: o.Longitude,
		Radius:    o.Radius,
	}
}

// Changes holds a partial office update. Nil means unchanged.
type Changes struct {
	Name      *string
	Latitude  *float64
	Longitude *float64
	Radius    *float64
	IsActive  *bool
}
