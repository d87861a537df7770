package view3d

// Projection selects how the camera maps world space to the screen.
type Projection uint8

const (
	// Perspective projection with a vertical field of view in degrees.
	Perspective Projection = iota
	// Orthographic projection; FovY is interpreted as the vertical extent
	// of the view volume in world units, matching raylib's convention.
	Orthographic
)

// String returns the string representation of a Projection.
func (p Projection) String() string {
	switch p {
	case Perspective:
		return "Perspective"
	case Orthographic:
		return "Orthographic"
	default:
		return "Unknown"
	}
}

// CameraMode selects how the backend's navigation step mutates the camera.
type CameraMode uint8

const (
	// CameraNone disables input-driven camera updates. Useful for headless
	// runs and deterministic tests.
	CameraNone CameraMode = iota
	// CameraFree translates and reorients the camera directly from
	// mouse/keyboard input, without constraint to an orbit target.
	CameraFree
)

// String returns the string representation of a CameraMode.
func (m CameraMode) String() string {
	switch m {
	case CameraNone:
		return "None"
	case CameraFree:
		return "Free"
	default:
		return "Unknown"
	}
}

// Camera describes a 3D view into the scene.
//
// The camera is the only mutable entity in the viewer: the backend's
// navigation step updates it in place once per frame. All other scene
// entities are immutable after construction.
type Camera struct {
	// Position is the eye point in world space.
	Position Vector3
	// Target is the point the camera looks at.
	Target Vector3
	// Up is the camera's up direction. It must not be parallel to the
	// view direction (Position - Target); see Valid.
	Up Vector3
	// FovY is the vertical field of view in degrees (perspective), or the
	// vertical extent of the view volume in world units (orthographic).
	FovY float64
	// Projection selects perspective or orthographic mapping.
	Projection Projection
}

// DefaultCamera returns the stock demo camera: eye on the (10,10,10)
// diagonal looking at the origin, +Y up, 75 degree vertical field of view,
// perspective projection.
func DefaultCamera() Camera {
	return Camera{
		Position:   V3(10, 10, 10),
		Target:     V3(0, 0, 0),
		Up:         V3(0, 1, 0),
		FovY:       75,
		Projection: Perspective,
	}
}

// Forward returns the normalized view direction, from Position to Target.
func (c Camera) Forward() Vector3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Right returns the normalized right direction of the camera frame.
func (c Camera) Right() Vector3 {
	return c.Forward().Cross(c.Up).Normalize()
}

// Valid reports whether the camera defines a usable view orientation:
// the eye and target are distinct, and Up is neither zero nor parallel to
// the view direction. Backends do not reject invalid cameras; rendering
// with one produces an undefined view orientation.
func (c Camera) Valid() bool {
	fwd := c.Target.Sub(c.Position)
	if fwd.LengthSq() == 0 || c.Up.LengthSq() == 0 {
		return false
	}
	// Up parallel to the view direction collapses the camera frame.
	return fwd.Cross(c.Up).LengthSq() > 1e-12
}
