package debug

import (
	"fmt"
	"math"
	"strings"
)

// Thresholds used by the analyzer, in linear full-scale units.
const (
	ClipThreshold    = 0.99
	DCThreshold      = 0.01
	SilenceThreshold = 0.0001
)

// AnalysisResult summarises one channel of audio.
type AnalysisResult struct {
	Samples        int
	Peak           float32
	RMS            float32
	DC             float32
	ClippedSamples int
	NaNCount       int
	Silent         bool
}

// Clipping reports whether any sample reached the clip threshold.
func (r AnalysisResult) Clipping() bool { return r.ClippedSamples > 0 }

// PeakDB returns the peak level in dBFS, or -Inf for digital silence.
func (r AnalysisResult) PeakDB() float64 {
	if r.Peak == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(float64(r.Peak))
}

// Analyze measures peak, RMS, DC offset, clipping and NaNs in a buffer.
// NaN samples are counted and otherwise ignored.
func Analyze(buffer []float32) AnalysisResult {
	result := AnalysisResult{Samples: len(buffer)}
	if len(buffer) == 0 {
		result.Silent = true
		return result
	}

	var sum, sumSquares float64
	valid := 0
	for _, sample := range buffer {
		if math.IsNaN(float64(sample)) {
			result.NaNCount++
			continue
		}
		valid++

		abs := float32(math.Abs(float64(sample)))
		result.Peak = max(result.Peak, abs)
		if abs >= ClipThreshold {
			result.ClippedSamples++
		}
		sum += float64(sample)
		sumSquares += float64(sample) * float64(sample)
	}

	if valid > 0 {
		result.RMS = float32(math.Sqrt(sumSquares / float64(valid)))
		result.DC = float32(sum / float64(valid))
	}
	result.Silent = result.RMS < SilenceThreshold
	return result
}

// AnalyzeChannels runs Analyze over each channel of a block.
func AnalyzeChannels(channels [][]float32) []AnalysisResult {
	results := make([]AnalysisResult, len(channels))
	for ch, data := range channels {
		results[ch] = Analyze(data)
	}
	return results
}

// CheckBuffer returns human readable problems found in a buffer.
func CheckBuffer(buffer []float32, name string) []string {
	var issues []string
	result := Analyze(buffer)

	if result.NaNCount > 0 {
		issues = append(issues, fmt.Sprintf("%s: contains %d NaN values", name, result.NaNCount))
	}
	if result.Clipping() {
		issues = append(issues, fmt.Sprintf("%s: clipping detected (%d samples)", name, result.ClippedSamples))
	}
	if math.Abs(float64(result.DC)) > DCThreshold {
		issues = append(issues, fmt.Sprintf("%s: DC offset detected (%.3f)", name, result.DC))
	}
	if result.Peak > 1.0 {
		issues = append(issues, fmt.Sprintf("%s: peak exceeds 1.0 (%.3f)", name, result.Peak))
	}
	return issues
}

// CompareBuffers reports how far two buffers differ beyond tolerance.
func CompareBuffers(a, b []float32, tolerance float32) string {
	if len(a) != len(b) {
		return fmt.Sprintf("Buffer length mismatch: %d vs %d", len(a), len(b))
	}

	var maxDiff float32
	maxIndex, count := 0, 0
	for i := range a {
		diff := float32(math.Abs(float64(a[i] - b[i])))
		if diff <= tolerance {
			continue
		}
		count++
		if diff > maxDiff {
			maxDiff, maxIndex = diff, i
		}
	}

	if count == 0 {
		return "Buffers are identical within tolerance"
	}
	return fmt.Sprintf("%d/%d samples differ, max %.6f at sample %d", count, len(a), maxDiff, maxIndex)
}

// Summary formats per-channel results as a small table.
func Summary(results []AnalysisResult) string {
	var sb strings.Builder
	sb.WriteString("ch  peak      peak dB   rms       clipped  nan\n")
	for ch, r := range results {
		fmt.Fprintf(&sb, "%-3d %-9.4f %-9.2f %-9.4f %-8d %d\n",
			ch, r.Peak, r.PeakDB(), r.RMS, r.ClippedSamples, r.NaNCount)
	}
	return sb.String()
}

// LogChannelStats logs per-channel statistics and any problems found.
func (l *Logger) LogChannelStats(name string, channels [][]float32) {
	for ch, data := range channels {
		r := Analyze(data)
		l.Info("%s[%d]: peak=%.3f rms=%.3f dc=%.4f", name, ch, r.Peak, r.RMS, r.DC)
		for _, issue := range CheckBuffer(data, fmt.Sprintf("%s[%d]", name, ch)) {
			l.Warn("%s", issue)
		}
	}
}
