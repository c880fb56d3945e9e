package parameter

import "time"

// Weapon is an immutable weapon template looked up by index
type Weapon struct {
	Name     string
	Color    string // Hex RGB, e.g. "#ff6600"
	Damage   int
	FireRate time.Duration // Minimum spacing between shots
	Speed    float64       // Bullet speed in px/tick
	Icon     string
}

// Weapons is the weapon catalog, index = weapon-select number - 1
var Weapons = [...]Weapon{
	{Name: "Combustor", Color: "#ff6600", Damage: 10, FireRate: 150 * time.Millisecond, Speed: 18, Icon: "🔥"},
	{Name: "Plasma Coil", Color: "#00ffff", Damage: 15, FireRate: 300 * time.Millisecond, Speed: 14, Icon: "⚡"},
	{Name: "Buzz Blades", Color: "#ff00ff", Damage: 8, FireRate: 100 * time.Millisecond, Speed: 12, Icon: "💿"},
	{Name: "RYNO", Color: "#ff0040", Damage: 50, FireRate: 500 * time.Millisecond, Speed: 20, Icon: "🚀"},
}

// WeaponCount is the number of selectable weapons
const WeaponCount = len(Weapons)

// WeaponAt returns the weapon at index i, Combustor when i is out of range
func WeaponAt(i int) Weapon {
	if i < 0 || i >= WeaponCount {
		return Weapons[0]
	}
	return Weapons[i]
}
