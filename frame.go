package layerfx

import "time"

// FrameData is the per-frame input handed to RenderToScene hooks.
type FrameData struct {
	// Delta is the time since the previous frame.
	Delta time.Duration

	// FFT holds the audio spectrum magnitudes, normalized to [0, 1].
	FFT []float32

	// Volume is the overall audio level in [0, 1].
	Volume float32

	// HasUpdate is false when the audio source produced no new data.
	HasUpdate bool
}
