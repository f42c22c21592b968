package models

// GameStatus represents the current phase of a game
type GameStatus string

const (
	StatusWaiting GameStatus = "waiting"
	StatusActive  GameStatus = "active"
	StatusEnded   GameStatus = "ended"
)

// Faction is one of the two competing teams
type Faction string

const (
	FactionNone  Faction = ""
	FactionMafia Faction = "mafia"
	FactionTown  Faction = "town"
)

// String returns the name used when announcing the winner
func (f Faction) String() string {
	switch f {
	case FactionMafia:
		return "Mafia"
	case FactionTown:
		return "Civilians"
	default:
		return ""
	}
}
