package f32

import "math"

// Lane masks are the results of per-component comparisons. Each lane is
// stored as all-bits-0 (false) or all-bits-1 (true) so that a mask has
// the same size as the vector it was produced from and can drive
// branch-free lane selection on either execution path. Masks are
// comparable with ==; the zero value is all lanes false.

// Vec2Mask is a 2-lane boolean mask.
type Vec2Mask [2]uint32

// Vec3Mask is a 3-lane boolean mask.
type Vec3Mask [3]uint32

// Vec4Mask is a 4-lane boolean mask.
type Vec4Mask [4]uint32

const laneTrue = 0xFFFFFFFF

func maskLane(b bool) uint32 {
	if b {
		return laneTrue
	}
	return 0
}

// Vec2MaskFromBools builds a mask from per-lane booleans.
func Vec2MaskFromBools(x, y bool) Vec2Mask {
	return Vec2Mask{maskLane(x), maskLane(y)}
}

// Vec3MaskFromBools builds a mask from per-lane booleans.
func Vec3MaskFromBools(x, y, z bool) Vec3Mask {
	return Vec3Mask{maskLane(x), maskLane(y), maskLane(z)}
}

// Vec4MaskFromBools builds a mask from per-lane booleans.
func Vec4MaskFromBools(x, y, z, w bool) Vec4Mask {
	return Vec4Mask{maskLane(x), maskLane(y), maskLane(z), maskLane(w)}
}

// And returns the lane-wise logical AND of m and o.
func (m Vec2Mask) And(o Vec2Mask) Vec2Mask { return Vec2Mask{m[0] & o[0], m[1] & o[1]} }

// Or returns the lane-wise logical OR of m and o.
func (m Vec2Mask) Or(o Vec2Mask) Vec2Mask { return Vec2Mask{m[0] | o[0], m[1] | o[1]} }

// Not returns the lane-wise logical NOT of m.
func (m Vec2Mask) Not() Vec2Mask { return Vec2Mask{^m[0], ^m[1]} }

// Bitmask packs the lanes into an integer, lane 0 at bit 0.
func (m Vec2Mask) Bitmask() uint32 { return m[0]&1 | (m[1]&1)<<1 }

// Any reports whether any lane is true.
func (m Vec2Mask) Any() bool { return m[0]|m[1] != 0 }

// All reports whether every lane is true.
func (m Vec2Mask) All() bool { return m[0]&m[1] == laneTrue }

// And returns the lane-wise logical AND of m and o.
func (m Vec3Mask) And(o Vec3Mask) Vec3Mask {
	return Vec3Mask{m[0] & o[0], m[1] & o[1], m[2] & o[2]}
}

// Or returns the lane-wise logical OR of m and o.
func (m Vec3Mask) Or(o Vec3Mask) Vec3Mask {
	return Vec3Mask{m[0] | o[0], m[1] | o[1], m[2] | o[2]}
}

// Not returns the lane-wise logical NOT of m.
func (m Vec3Mask) Not() Vec3Mask { return Vec3Mask{^m[0], ^m[1], ^m[2]} }

// Bitmask packs the lanes into an integer, lane 0 at bit 0.
func (m Vec3Mask) Bitmask() uint32 { return m[0]&1 | (m[1]&1)<<1 | (m[2]&1)<<2 }

// Any reports whether any lane is true.
func (m Vec3Mask) Any() bool { return m[0]|m[1]|m[2] != 0 }

// All reports whether every lane is true.
func (m Vec3Mask) All() bool { return m[0]&m[1]&m[2] == laneTrue }

// And returns the lane-wise logical AND of m and o.
func (m Vec4Mask) And(o Vec4Mask) Vec4Mask {
	return Vec4Mask{m[0] & o[0], m[1] & o[1], m[2] & o[2], m[3] & o[3]}
}

// Or returns the lane-wise logical OR of m and o.
func (m Vec4Mask) Or(o Vec4Mask) Vec4Mask {
	return Vec4Mask{m[0] | o[0], m[1] | o[1], m[2] | o[2], m[3] | o[3]}
}

// Not returns the lane-wise logical NOT of m.
func (m Vec4Mask) Not() Vec4Mask { return Vec4Mask{^m[0], ^m[1], ^m[2], ^m[3]} }

// Bitmask packs the lanes into an integer, lane 0 at bit 0.
func (m Vec4Mask) Bitmask() uint32 {
	return m[0]&1 | (m[1]&1)<<1 | (m[2]&1)<<2 | (m[3]&1)<<3
}

// Any reports whether any lane is true.
func (m Vec4Mask) Any() bool { return m[0]|m[1]|m[2]|m[3] != 0 }

// All reports whether every lane is true.
func (m Vec4Mask) All() bool { return m[0]&m[1]&m[2]&m[3] == laneTrue }

// Lane selection works on bit patterns, so with well-formed masks it is
// bit-exact and identical on every execution path.

func selectLane(mask uint32, t, f float32) float32 {
	return math.Float32frombits(math.Float32bits(t)&mask | math.Float32bits(f)&^mask)
}

// SelectVec2 picks each lane from ifTrue where the mask lane is set,
// from ifFalse otherwise.
func SelectVec2(mask Vec2Mask, ifTrue, ifFalse Vec2) Vec2 {
	return Vec2{
		selectLane(mask[0], ifTrue[0], ifFalse[0]),
		selectLane(mask[1], ifTrue[1], ifFalse[1]),
	}
}

// SelectVec3 picks each lane from ifTrue where the mask lane is set,
// from ifFalse otherwise.
func SelectVec3(mask Vec3Mask, ifTrue, ifFalse Vec3) Vec3 {
	return Vec3{
		selectLane(mask[0], ifTrue[0], ifFalse[0]),
		selectLane(mask[1], ifTrue[1], ifFalse[1]),
		selectLane(mask[2], ifTrue[2], ifFalse[2]),
	}
}

// SelectVec4 picks each lane from ifTrue where the mask lane is set,
// from ifFalse otherwise.
func SelectVec4(mask Vec4Mask, ifTrue, ifFalse Vec4) Vec4 {
	return Vec4{
		selectLane(mask[0], ifTrue[0], ifFalse[0]),
		selectLane(mask[1], ifTrue[1], ifFalse[1]),
		selectLane(mask[2], ifTrue[2], ifFalse[2]),
		selectLane(mask[3], ifTrue[3], ifFalse[3]),
	}
}
