package domain

// Coordinate - точка запроса в градусах
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Shrine - документ коллекции святилищ. Поля могут отсутствовать:
// запись без числовых lat/lng при поиске пропускается.
type Shrine struct {
	ID         string   `json:"id" db:"id"`
	Name       *string  `json:"name,omitempty" db:"name"`
	Prefecture *string  `json:"prefecture,omitempty" db:"prefecture"`
	Lat        *float64 `json:"lat,omitempty" db:"lat"`
	Lng        *float64 `json:"lng,omitempty" db:"lng"`
}

// HasCoordinates reports whether both coordinates are present.
func (s *Shrine) HasCoordinates() bool {
	return s != nil && s.Lat != nil && s.Lng != nil
}

// NearestShrine - ближайшее святилище в радиусе поиска
type NearestShrine struct {
	ShrineID       string
	Name           *string
	Prefecture     *string
	Lat            float64
	Lng            float64
	DistanceMeters float64
}
