package models

// Role is a secret role handed out at game start. The zero value means unassigned.
type Role string

const (
	RoleNone     Role = ""
	RoleDon      Role = "Mafia Don"
	RoleMafia    Role = "Mafia"
	RoleSheriff  Role = "Sheriff"
	RoleDoctor   Role = "Doctor"
	RoleCivilian Role = "Civilian"
)

// Roles lists every assignable role
var Roles = []Role{RoleDon, RoleMafia, RoleSheriff, RoleDoctor, RoleCivilian}

// Faction reports which team the role plays for
func (r Role) Faction() Faction {
	switch r {
	case RoleNone:
		return FactionNone
	case RoleDon, RoleMafia:
		return FactionMafia
	default:
		return FactionTown
	}
}

// IsMafia reports whether the role belongs to the mafia faction
func (r Role) IsMafia() bool {
	return r.Faction() == FactionMafia
}

// Player represents a participant of a single game
type Player struct {
	ID       int64
	Name     string // captured at join time
	Role     Role
	IsAlive  bool
	Order    int
	Revealed bool
}

// HasRole reports whether a role has been assigned
func (p *Player) HasRole() bool {
	return p.Role != RoleNone
}
