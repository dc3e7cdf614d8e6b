package entity

// Map is a playable map and the round counts it supports.
type Map struct {
	Name   string   `json:"name"`
	Rounds []string `json:"rounds"`
}
