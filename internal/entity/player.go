package entity

type Player struct {
	Name   string `json:"name"`
	Colour string `json:"colour"`
}
