package data

import "encoding/json"

// Address is a postal address as returned by the remote service. Every
// part is optional; institutions report what they have.
type Address struct {
	Zip    *string
	State  *string
	City   *string
	Street *string
	// Coordinates, when the service resolved the address to a location.
	Latitude  *float64
	Longitude *float64
}

type addressWire struct {
	Zip    *string `json:"zip"`
	State  *string `json:"state"`
	City   *string `json:"city"`
	Street *string `json:"street"`
	// Older response revisions use "address" for the street part.
	LegacyStreet *string `json:"address"`
	Coordinates  *struct {
		Lat *float64 `json:"lat"`
		Lon *float64 `json:"lon"`
	} `json:"coordinates"`
}

// UnmarshalJSON accepts both the "street" and the legacy "address" key for
// the street part. "street" wins when both are present; neither leaves the
// field nil.
func (a *Address) UnmarshalJSON(b []byte) error {
	var w addressWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	street := w.Street
	if street == nil {
		street = w.LegacyStreet
	}

	a.Zip = w.Zip
	a.State = w.State
	a.City = w.City
	a.Street = street
	if w.Coordinates != nil {
		a.Latitude = w.Coordinates.Lat
		a.Longitude = w.Coordinates.Lon
	}
	return nil
}
