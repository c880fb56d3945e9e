package parameter

// Play Field (logical pixels, origin top-left)
const (
	// FieldWidth is the logical width of the play field
	FieldWidth = 800.0

	// FieldHeight is the logical height of the play field
	FieldHeight = 600.0

	// FieldInset is the margin the player is kept away from the edges
	FieldInset = 20.0

	// BulletBoundsMargin expands the field for bullet culling
	BulletBoundsMargin = 20.0

	// SpawnEdgeOffset places new enemies outside the field on the perpendicular axis
	SpawnEdgeOffset = 30.0
)

// Player bounds after the movement step
const (
	PlayerMinX = FieldInset
	PlayerMaxX = FieldWidth - FieldInset
	PlayerMinY = FieldInset
	PlayerMaxY = FieldHeight - FieldInset
)

// Bullet culling box
const (
	BulletMinX = -BulletBoundsMargin
	BulletMaxX = FieldWidth + BulletBoundsMargin
	BulletMinY = -BulletBoundsMargin
	BulletMaxY = FieldHeight + BulletBoundsMargin
)
