package game

const (
	// DefaultMaxPlayers is the number of seats when the owner does not specify one
	DefaultMaxPlayers = 11

	// DefaultMaxMafia is the mafia faction size (Don included) when the owner does not specify one
	DefaultMaxMafia = 3

	// MinPlayers leaves room for the Don, the Sheriff and the Doctor
	MinPlayers = 3

	// MaxPlayersLimit caps a single game
	MaxPlayersLimit = 50

	// GameIDLength is the length of generated game ids
	GameIDLength = 6

	// GameIDChars are the characters used for generating game ids (excluding ambiguous chars)
	GameIDChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)
