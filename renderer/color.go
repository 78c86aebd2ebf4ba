package renderer

import "github.com/chewxy/math32"

// Phase offsets of the red, green and blue channels in radians.
var channelPhases = [3]float32{0.0, 1.0, 0.5}

// Wave maps sin(elapsed+phase) from [-1,1] onto [0,1].
func Wave(elapsed float64, phase float32) float32 {
	return math32.Sin(float32(elapsed)+phase)*0.5 + 0.5
}

// ClearColor returns the opaque RGBA clear colour for a frame drawn elapsed
// seconds after startup.
func ClearColor(elapsed float64) [4]float32 {
	return [4]float32{
		Wave(elapsed, channelPhases[0]),
		Wave(elapsed, channelPhases[1]),
		Wave(elapsed, channelPhases[2]),
		1.0,
	}
}
