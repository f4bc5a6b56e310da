// Package softgl provides a minimal, predictable software 3D pipeline for the orrery viewer.
//
// It is intended for small scenes of textured spheres and line loops drawn through a
// single fixed perspective camera. It does not provide a GPU abstraction.
//
// Pipeline (fixed):
//
//	Draw list → Model-view → Projection → Clipping → Rasterization → Target.
//
// Matrices are column-major mgl32 values, matching the conventional OpenGL layout
// (m[col*4+row]). Rotation helpers take degrees of arbitrary magnitude and reduce
// them modulo 360 in float64 before converting to float32 radians, so long-running
// animation clocks do not lose precision in the rotation itself.
package softgl
