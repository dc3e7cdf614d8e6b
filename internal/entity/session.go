package entity

const DefaultStateMessage = "No message."

// GameSession is what the service hands back for a freshly created game.
type GameSession struct {
	Token    string `json:"token"`
	JoinCode string `json:"join_code"`
}

type GameState struct {
	State   string `json:"state"`
	Round   string `json:"round"`
	Message string `json:"message"`
}
