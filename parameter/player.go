package parameter

// Player
const (
	// PlayerStartX and PlayerStartY place the player at field centre on a new game
	PlayerStartX = FieldWidth / 2
	PlayerStartY = FieldHeight / 2

	// PlayerSpeed is movement per tick per held axis; diagonals are not normalized
	PlayerSpeed = 5.0

	// PlayerMaxHealth is the starting and maximum health
	PlayerMaxHealth = 100

	// MuzzleOffset is the bullet spawn distance ahead of the player along the facing angle
	MuzzleOffset = 25.0

	// StartingWave is the wave number of a fresh session
	StartingWave = 1
)
