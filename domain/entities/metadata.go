package entities

import "time"

// Metadata this struct contains extra information about the data that leaves our system
// + RunID: ID of the analysis run that produced the data
// + City: city which belongs the data
// + Type: this field helps the consumers to recognize what type of data is
// + CreatedAt: moment in which the data was produced
type Metadata struct {
	RunID     string    `json:"run_id"`
	City      string    `json:"city"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
}

func NewMetadata(runID string, city string, dataType string) Metadata {
	return Metadata{
		RunID:     runID,
		City:      city,
		Type:      dataType,
		CreatedAt: time.Now().UTC(),
	}
}

func (m Metadata) GetRunID() string {
	return m.RunID
}

func (m Metadata) GetType() string {
	return m.Type
}

func (m Metadata) GetCity() string {
	return m.City
}
