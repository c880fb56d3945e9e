package parameter

// EnemyType tags an enemy instance with its archetype
type EnemyType string

const (
	EnemyDrone EnemyType = "drone"
	EnemyTank  EnemyType = "tank"
	EnemySwarm EnemyType = "swarm"
)

// EnemyArchetype is an immutable enemy stat template
type EnemyArchetype struct {
	Type   EnemyType
	Health int // Base health before wave scaling
	Color  string
	Speed  float64 // px/tick
	Size   float64 // Rendered diameter
	Points int
}

// Radius is the collision radius of the archetype
func (a EnemyArchetype) Radius() float64 {
	return a.Size / 2
}

// EnemyArchetypes is ordered by unlock wave: the first min(wave,3) are eligible
var EnemyArchetypes = [...]EnemyArchetype{
	{Type: EnemyDrone, Health: 20, Color: "#ff4444", Speed: 1.5, Size: 24, Points: 100},
	{Type: EnemyTank, Health: 60, Color: "#44ff44", Speed: 0.8, Size: 36, Points: 250},
	{Type: EnemySwarm, Health: 10, Color: "#ffff44", Speed: 2.5, Size: 16, Points: 50},
}

// DefaultArchetype is used for tags that match no catalog entry
var DefaultArchetype = EnemyArchetypes[0]

// EnemyArchetypeByType looks up an archetype by tag, falling back to DefaultArchetype
func EnemyArchetypeByType(t EnemyType) EnemyArchetype {
	for _, a := range EnemyArchetypes {
		if a.Type == t {
			return a
		}
	}
	return DefaultArchetype
}
