// Package clip implements continuous collision between axis-aligned square
// boxes: a swept test for one translating box against a stationary one, and a
// resolver that clips a displacement against a list of candidate obstacles.
package clip

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Impact describes the first contact of a swept box.
type Impact struct {
	// TimeOfImpact is the fraction of the displacement traveled before contact.
	TimeOfImpact float32
	// Normal is the unit normal of the mover's touching face.
	// It points from the mover toward the obstacle.
	Normal mgl32.Vec2
}

// Sweep tests a box of half-extent moverHalf centered at moverCenter and
// translating by d against a stationary box at obstacleCenter.
//
// It reports false when there is no contact within the displacement, when d
// is zero, and when the boxes already overlap at the start of the move.
func Sweep(moverCenter, d mgl32.Vec2, moverHalf float32, obstacleCenter mgl32.Vec2, obstacleHalf float32) (Impact, bool) {
	if d.X() == 0 && d.Y() == 0 {
		return Impact{}, false
	}

	ext := moverHalf + obstacleHalf
	delta := obstacleCenter.Sub(moverCenter)
	if abs(delta.X()) < ext && abs(delta.Y()) < ext {
		return Impact{}, false
	}

	entry := float32(math.Inf(-1))
	exit := float32(math.Inf(1))
	axis := -1

	for i := 0; i < 2; i++ {
		if d[i] == 0 {
			// Never overlaps on a stationary axis that starts separated.
			if abs(delta[i]) >= ext {
				return Impact{}, false
			}
			continue
		}
		t0 := (delta[i] - ext) / d[i]
		t1 := (delta[i] + ext) / d[i]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		// Ties resolve to the vertical axis.
		if t0 > entry || (i == 1 && t0 == entry) {
			entry = t0
			axis = i
		}
		exit = min(exit, t1)
	}

	if axis < 0 || entry > exit || exit <= 0 || entry < 0 || entry > 1 {
		return Impact{}, false
	}

	var n mgl32.Vec2
	n[axis] = sign(d[axis])
	return Impact{TimeOfImpact: entry, Normal: n}, true
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v float32) float32 {
	if v < 0 {
		return -1
	}
	return 1
}
