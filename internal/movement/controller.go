// Package movement moves the player through the dungeon and resolves
// collisions with walls.
package movement

import (
	"math"

	"github.com/samdwyer/dungeonloot/internal/entity"
	"github.com/samdwyer/dungeonloot/internal/world"
)

// DefaultSpeed is the player speed in world units per second.
const DefaultSpeed = 150

// Directions holds the held direction inputs for one frame.
type Directions struct {
	Left, Right, Up, Down bool
}

// axes resolves the flags to a unit axis vector. Left wins over right and up
// wins over down when both are held.
func (d Directions) axes() (dx, dy float64) {
	switch {
	case d.Left:
		dx = -1
	case d.Right:
		dx = 1
	}
	switch {
	case d.Up:
		dy = -1
	case d.Down:
		dy = 1
	}
	return dx, dy
}

// Controller owns the player and advances it one frame at a time.
type Controller struct {
	grid   *world.Grid
	player *entity.Player
	speed  float64
}

// New creates a controller for the player on the given grid.
func New(grid *world.Grid, player *entity.Player, speed float64) *Controller {
	return &Controller{
		grid:   grid,
		player: player,
		speed:  speed,
	}
}

// Update moves the player for one frame of dt seconds and returns the new
// centre position.
//
// The velocity is normalised so diagonal movement is no faster than axial
// movement. The X axis is moved and resolved against walls before the Y axis,
// which lets the player slide along a wall while pushing into it diagonally.
// Frames that would move further than the player's half-extent are split into
// smaller steps so the player cannot pass through a wall tile.
func (c *Controller) Update(dirs Directions, dt float64) (float64, float64) {
	p := c.player
	dx, dy := dirs.axes()
	p.VX, p.VY = 0, 0

	if dx != 0 || dy != 0 {
		length := math.Hypot(dx, dy)
		p.VX = dx / length * c.speed
		p.VY = dy / length * c.speed
	}

	if (p.VX != 0 || p.VY != 0) && dt > 0 {
		steps := 1
		if maxStep := p.HalfExtent; maxStep > 0 {
			steps = max(1, int(math.Ceil(c.speed*dt/maxStep)))
		}
		stepDT := dt / float64(steps)
		for i := 0; i < steps; i++ {
			c.moveX(p.VX * stepDT)
			c.moveY(p.VY * stepDT)
		}
	}

	c.clampToWorld()
	return p.X, p.Y
}

// moveX applies a horizontal displacement and pushes the player back to the
// face of any wall it now overlaps.
func (c *Controller) moveX(delta float64) {
	if delta == 0 {
		return
	}
	p := c.player
	p.X += delta

	walls := c.grid.SolidRectsOverlapping(p.Bounds())
	if len(walls) == 0 {
		return
	}
	if delta > 0 {
		face := walls[0].MinX
		for _, w := range walls[1:] {
			face = math.Min(face, w.MinX)
		}
		p.X = face - p.HalfExtent
	} else {
		face := walls[0].MaxX
		for _, w := range walls[1:] {
			face = math.Max(face, w.MaxX)
		}
		p.X = face + p.HalfExtent
	}
}

// moveY is moveX for the vertical axis.
func (c *Controller) moveY(delta float64) {
	if delta == 0 {
		return
	}
	p := c.player
	p.Y += delta

	walls := c.grid.SolidRectsOverlapping(p.Bounds())
	if len(walls) == 0 {
		return
	}
	if delta > 0 {
		face := walls[0].MinY
		for _, w := range walls[1:] {
			face = math.Min(face, w.MinY)
		}
		p.Y = face - p.HalfExtent
	} else {
		face := walls[0].MaxY
		for _, w := range walls[1:] {
			face = math.Max(face, w.MaxY)
		}
		p.Y = face + p.HalfExtent
	}
}

// clampToWorld keeps the player's box inside the map.
func (c *Controller) clampToWorld() {
	p := c.player
	width, height := c.grid.WorldBounds()
	p.X = clamp(p.X, p.HalfExtent, width-p.HalfExtent)
	p.Y = clamp(p.Y, p.HalfExtent, height-p.HalfExtent)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(v, hi))
}

// Position returns the player's centre.
func (c *Controller) Position() (float64, float64) {
	return c.player.Position()
}

// Bounds returns the player's bounding box.
func (c *Controller) Bounds() world.Rect {
	return c.player.Bounds()
}
