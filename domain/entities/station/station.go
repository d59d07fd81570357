package station

// StationData struct that contains the location of a station
type StationData struct {
	City      string  `json:"city"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GetCoordinates returns the latitude and longitude of the station
func (sd StationData) GetCoordinates() (float64, float64) {
	return sd.Latitude, sd.Longitude
}
