package main

import (
	"encoding/json"
	"math"

	"github.com/google/uuid"
)

// newConnectionID returns the unique id for a new connection; it becomes
// the player id if the connection joins the game.
func newConnectionID() string {
	return uuid.NewString()
}

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Distance returns the euclidean distance between two points
func Distance(a, b Vec3) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Scale multiplies a vector by a scalar
func Scale(v Vec3, s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// defaultPlayerName derives a display name from a connection id
func defaultPlayerName(id string) string {
	if len(id) > 4 {
		id = id[:4]
	}
	return "Player" + id
}

// parseVec3 decodes an untrusted vector that may arrive as an
// {x,y,z} object or a 3-tuple. Anything else (wrong shape, missing or
// non-numeric components) yields the fallback as a whole; vectors are
// never partially accepted.
func parseVec3(raw json.RawMessage, fallback Vec3) Vec3 {
	if len(raw) == 0 {
		return fallback
	}

	var obj struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
		Z *float64 `json:"z"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		if obj.X != nil && obj.Y != nil && obj.Z != nil &&
			isFinite(*obj.X) && isFinite(*obj.Y) && isFinite(*obj.Z) {
			return Vec3{X: *obj.X, Y: *obj.Y, Z: *obj.Z}
		}
		return fallback
	}

	var arr []*float64
	if err := json.Unmarshal(raw, &arr); err == nil && len(arr) == 3 {
		if arr[0] != nil && arr[1] != nil && arr[2] != nil &&
			isFinite(*arr[0]) && isFinite(*arr[1]) && isFinite(*arr[2]) {
			return Vec3{X: *arr[0], Y: *arr[1], Z: *arr[2]}
		}
	}
	return fallback
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
