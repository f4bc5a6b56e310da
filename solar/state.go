package solar

// SceneState owns all mutable animation state: the camera, the clock and
// the bodies being animated.
type SceneState struct {
	Camera  Camera
	Clock   Clock
	Sun     Body
	Planets []Body
}

// NewSceneState returns the initial state with the built-in bodies.
func NewSceneState() *SceneState {
	return &SceneState{
		Camera:  NewCamera(),
		Sun:     Sun(),
		Planets: Planets(),
	}
}

// Input applies one frame's input: every pending scroll dy in order, then
// the sampled key state.
func (s *SceneState) Input(scroll []float64, keys Keys) {
	for _, dy := range scroll {
		s.Camera.Scroll(dy)
	}
	s.Camera.Keys(keys)
}

// Advance moves the animation clock forward by one frame.
func (s *SceneState) Advance() { s.Clock.Advance() }
