// Package solar holds the animation model of the orrery: the bodies table,
// the animation clock, the camera and the transform composer that places
// every body each frame.
//
// Everything here is pure data and math. Nothing needs a graphics context,
// so the whole package is testable in isolation; rendering consumes the
// Frame draw list built by SceneState.
package solar
