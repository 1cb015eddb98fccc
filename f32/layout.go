package f32

import "unsafe"

// Compile-time layout contract. Both execution paths and any external
// serialization see these exact sizes; each pair of constants fails the
// build if a type grows or shrinks. Masks must stay the same size as
// their vector so lane-wise reinterpretation is valid.
const (
	_ = uint(unsafe.Sizeof(Vec2{}) - 8)
	_ = uint(8 - unsafe.Sizeof(Vec2{}))
	_ = uint(unsafe.Sizeof(Vec3{}) - 12)
	_ = uint(12 - unsafe.Sizeof(Vec3{}))
	_ = uint(unsafe.Sizeof(Vec4{}) - 16)
	_ = uint(16 - unsafe.Sizeof(Vec4{}))
	_ = uint(unsafe.Sizeof(Quat{}) - 16)
	_ = uint(16 - unsafe.Sizeof(Quat{}))
	_ = uint(unsafe.Sizeof(Mat2{}) - 16)
	_ = uint(16 - unsafe.Sizeof(Mat2{}))
	_ = uint(unsafe.Sizeof(Mat3{}) - 36)
	_ = uint(36 - unsafe.Sizeof(Mat3{}))
	_ = uint(unsafe.Sizeof(Mat4{}) - 64)
	_ = uint(64 - unsafe.Sizeof(Mat4{}))

	_ = uint(unsafe.Sizeof(Vec2Mask{}) - unsafe.Sizeof(Vec2{}))
	_ = uint(unsafe.Sizeof(Vec2{}) - unsafe.Sizeof(Vec2Mask{}))
	_ = uint(unsafe.Sizeof(Vec3Mask{}) - unsafe.Sizeof(Vec3{}))
	_ = uint(unsafe.Sizeof(Vec3{}) - unsafe.Sizeof(Vec3Mask{}))
	_ = uint(unsafe.Sizeof(Vec4Mask{}) - unsafe.Sizeof(Vec4{}))
	_ = uint(unsafe.Sizeof(Vec4{}) - unsafe.Sizeof(Vec4Mask{}))
)
