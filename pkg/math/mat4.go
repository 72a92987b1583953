package math

// Mat4 is a 4x4 matrix stored column by column, the layout
// glUniformMatrix4fv takes with transpose off. Element (row r, col c) is
// m[c*4+r].
type Mat4 [16]float32

// Ortho returns an orthographic projection mapping the box
// [left,right]x[bottom,top]x[-near,-far] onto clip space.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	sx := 2 / (right - left)
	sy := 2 / (top - bottom)
	sz := -2 / (far - near)

	var m Mat4
	m[0] = sx
	m[5] = sy
	m[10] = sz
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	m[15] = 1
	return m
}

// LookAt returns a right-handed view matrix for an eye at eye looking at
// target. The result maps eye to the origin and target onto -Z.
func LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	side := forward.Cross(up).Normalize()
	camUp := side.Cross(forward)

	var m Mat4
	for i, basis := range [3]Vec3{side, camUp, forward.Scale(-1)} {
		m[i] = basis.X
		m[4+i] = basis.Y
		m[8+i] = basis.Z
		m[12+i] = -basis.Dot(eye)
	}
	m[15] = 1
	return m
}

// Ptr returns a pointer to the first element for uniform uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
