package model

// Occupant is a person currently aboard a spacecraft
type Occupant struct {
	Name    string `json:"name"`
	Vehicle string `json:"craft"`
}

// Roster is the directory service response body
type Roster struct {
	People []Occupant `json:"people"`
}
