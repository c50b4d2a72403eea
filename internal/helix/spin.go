package helix

import "time"

// Spinner turns elapsed wall time into the scene rotation angle.
type Spinner struct {
	now   func() time.Time
	start time.Time
}

func NewSpinner(now func() time.Time) *Spinner {
	if now == nil {
		now = time.Now
	}
	return &Spinner{now: now, start: now()}
}

func (s *Spinner) Elapsed() time.Duration {
	return s.now().Sub(s.start)
}

// Angle is elapsed seconds times speed. The angle is not integrated, so a
// speed change takes effect relative to the original start time.
func (s *Spinner) Angle(speed float64) float64 {
	return s.Elapsed().Seconds() * speed
}

// Tick sets the rotation of scene for the current frame and returns it.
func (s *Spinner) Tick(scene *Scene, speed float64) float64 {
	a := s.Angle(speed)
	scene.SetRotation(a)
	return a
}
