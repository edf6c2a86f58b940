package renderer

import (
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/df07/go-pathtracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken by every pixel
	Workers         int           // Goroutines that shared the sample tasks
	MeanLuminance   float64       // Mean of the per-pixel luminance
	StdDevLuminance float64       // Spread of the per-pixel luminance
	StdErrLuminance float64       // Standard error of MeanLuminance
	Duration        time.Duration // Wall time from dispatch to merge
}

// PixelStats tracks sampling statistics for a single pixel
type PixelStats struct {
	ColorAccum       core.Vec3 // RGB accumulator for final result
	LuminanceAccum   float64   // Luminance accumulator
	LuminanceSqAccum float64   // Luminance squared for variance
	SampleCount      int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.ColorAccum = ps.ColorAccum.Add(color)
	luminance := color.Luminance()
	ps.LuminanceAccum += luminance
	ps.LuminanceSqAccum += luminance * luminance
	ps.SampleCount++
}

// Merge folds the samples of other into ps
func (ps *PixelStats) Merge(other PixelStats) {
	ps.ColorAccum = ps.ColorAccum.Add(other.ColorAccum)
	ps.LuminanceAccum += other.LuminanceAccum
	ps.LuminanceSqAccum += other.LuminanceSqAccum
	ps.SampleCount += other.SampleCount
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Black
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}

// Variance returns the sample variance of the luminance seen by this pixel
func (ps *PixelStats) Variance() float64 {
	if ps.SampleCount < 2 {
		return 0
	}
	n := float64(ps.SampleCount)
	mean := ps.LuminanceAccum / n
	return (ps.LuminanceSqAccum - n*mean*mean) / (n - 1)
}

// computeLuminanceStats fills the luminance fields of stats from the
// normalized pixel colors
func computeLuminanceStats(pixels []PixelStats, stats *RenderStats) {
	if len(pixels) == 0 {
		return
	}
	luminance := make([]float64, len(pixels))
	for i := range pixels {
		luminance[i] = pixels[i].GetColor().Luminance()
	}
	if len(luminance) == 1 {
		stats.MeanLuminance = luminance[0]
		return
	}
	mean, std := stat.MeanStdDev(luminance, nil)
	stats.MeanLuminance = mean
	stats.StdDevLuminance = std
	stats.StdErrLuminance = stat.StdErr(std, float64(len(luminance)))
}
