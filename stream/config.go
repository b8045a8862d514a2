package stream

import "time"

// Config is the YAML configuration for the streamer.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Widget WidgetConfig `yaml:"widget"`
}

// WidgetConfig carries the animation geometry. The zero value decodes
// to the stock widget: 16 frames at 8 fps on a 364-pixel square with a
// 60-second reference bias.
type WidgetConfig struct {
	FrameCount        int     `yaml:"frameCount"`
	FrameRate         float64 `yaml:"frameRate"`
	Size              int     `yaml:"size"`
	FontDir           string  `yaml:"fontDir"`
	FontPoints        float64 `yaml:"fontPoints"`
	ReferenceBiasSecs float64 `yaml:"referenceBiasSecs"`
	TransitionSecs    float64 `yaml:"transitionSecs"`
}

// ApplyDefaults fills unset fields with the stock widget constants.
func (w *WidgetConfig) ApplyDefaults() {
	if w.FrameCount == 0 {
		w.FrameCount = 16
	}
	if w.FrameRate == 0 {
		w.FrameRate = 8
	}
	if w.Size == 0 {
		w.Size = 364
	}
	if w.FontDir == "" {
		w.FontDir = "fonts"
	}
	if w.FontPoints == 0 {
		w.FontPoints = float64(w.Size)
	}
	if w.ReferenceBiasSecs == 0 {
		w.ReferenceBiasSecs = DefaultReferenceBias.Seconds()
	}
	if w.TransitionSecs == 0 {
		w.TransitionSecs = 5
	}
}

// FrameDuration returns 1/frameRate.
func (w WidgetConfig) FrameDuration() time.Duration {
	return time.Duration(float64(time.Second) / w.FrameRate)
}

// Unit returns the blink time unit, frameDuration × frameCount/2.
// Doubling it gives the super-cycle period; the group mask offset
// equals exactly one unit. Deriving all three from the same product
// is what keeps the loop seam free of judder.
func (w WidgetConfig) Unit() time.Duration {
	return time.Duration(w.FrameCount/2) * w.FrameDuration()
}

// ReferenceBias returns how far into the past a fresh reference
// instant is placed.
func (w WidgetConfig) ReferenceBias() time.Duration {
	return time.Duration(w.ReferenceBiasSecs * float64(time.Second))
}
