// Package atlas implements texture atlas packing, compositing and UV
// remapping for multi-material meshes.
package atlas

// Role is a semantic texture channel of a material.
type Role string

// Recognized channel roles.
const (
	RoleDiffuse   Role = "diffuse"
	RoleNormal    Role = "normal"
	RoleRoughness Role = "roughness"
	RoleMetalness Role = "metalness"
	RoleIOR       Role = "ior"
	RoleEmission  Role = "emission"
	RoleAlpha     Role = "alpha"
)

// AllRoles lists every recognized role in canonical order.
var AllRoles = []Role{
	RoleDiffuse,
	RoleNormal,
	RoleRoughness,
	RoleMetalness,
	RoleIOR,
	RoleEmission,
	RoleAlpha,
}

// roleInfo describes the fixed per-role metadata: the background color a
// composited atlas is initialized with where no material contributes
// texels, and whether the channel carries data (linear) rather than
// perceptual color.
type roleInfo struct {
	background [4]float32
	data       bool
}

var roleTable = map[Role]roleInfo{
	RoleDiffuse:   {background: [4]float32{0, 0, 0, 1}},
	RoleNormal:    {background: [4]float32{0.5, 0.5, 1, 1}, data: true},
	RoleRoughness: {background: [4]float32{0.5, 0.5, 0.5, 1}, data: true},
	RoleMetalness: {background: [4]float32{0, 0, 0, 1}, data: true},
	RoleIOR:       {background: [4]float32{1, 1, 1, 1}, data: true},
	RoleEmission:  {background: [4]float32{0, 0, 0, 1}},
	RoleAlpha:     {background: [4]float32{1, 1, 1, 1}, data: true},
}

// Valid reports whether r is one of the recognized roles.
func (r Role) Valid() bool {
	_, ok := roleTable[r]
	return ok
}

// Background returns the default background color for the role.
func (r Role) Background() [4]float32 {
	return roleTable[r].background
}

// IsData reports whether the role holds non-color (linear) data, such as
// normals or roughness, as opposed to perceptual color.
func (r Role) IsData() bool {
	return roleTable[r].data
}
