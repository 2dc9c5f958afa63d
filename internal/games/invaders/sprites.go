package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Sprite is a declarative pixel-art image: one mask per animation frame,
// stretched over the entity's bounds when drawn. '#' marks a set pixel.
type Sprite struct {
	Frames [][]string
	Color  core.Color
}

// Frame returns the mask for animation frame i, wrapping around.
func (s Sprite) Frame(i int) []string {
	if len(s.Frames) == 0 {
		return nil
	}
	if i < 0 {
		i = -i
	}
	return s.Frames[i%len(s.Frames)]
}

var squidSprite = Sprite{
	Color: core.ColorBrightYellow,
	Frames: [][]string{
		{
			"..##...##..",
			".#.#...#.#.",
			".#########.",
			".#########.",
			"##..###..##",
			"#....#....#",
			"#....#....#",
		},
		{
			"..##...##..",
			".#.#...#.#.",
			".#########.",
			".#########.",
			".##.###.##.",
			".#...#...#.",
			".#...#...#.",
		},
	},
}

var crabSprite = Sprite{
	Color: core.ColorBrightMagenta,
	Frames: [][]string{
		{
			"#.........#",
			".#########.",
			"###########",
			"###########",
			"..#######..",
			".##.....##.",
			".##.....##.",
		},
		{
			".#.......#.",
			".#########.",
			"###########",
			"###########",
			"..#######..",
			"..##...##..",
			"..##...##..",
		},
	},
}

var octopusSprite = Sprite{
	Color: core.ColorBrightCyan,
	Frames: [][]string{
		{
			"...#####...",
			"..#######..",
			"..#..#..#..",
			"..#######..",
			".##.###.##.",
			".##.###.##.",
		},
		{
			"...#####...",
			"..#######..",
			"..#..#..#..",
			"..#######..",
			"..#######..",
			"..#######..",
		},
	},
}

// PlayerSprite is the player's ship.
var PlayerSprite = Sprite{
	Color: core.ColorWhite,
	Frames: [][]string{
		{
			".....#.....",
			"....###....",
			"...#####...",
			".#########.",
			"###########",
			"##.#...#.##",
		},
	},
}

// EnemySprite returns the sprite for an enemy type.
func EnemySprite(t EnemyType) Sprite {
	switch t {
	case Squid:
		return squidSprite
	case Crab:
		return crabSprite
	default:
		return octopusSprite
	}
}
