package algorithms

import "fmt"

// PerformancePoint is one sample of a synthetic performance curve.
type PerformancePoint struct {
	InputSize  int
	Complexity float64
}

// complexityFuncs map a plaintext size to an estimated time in microseconds.
var complexityFuncs = map[string]func(n float64) float64{
	AlgorithmSHA256:    func(n float64) float64 { return 157.424 - 0.220105*n + 0.002187*n*n },
	AlgorithmAES:       func(n float64) float64 { return 0.323*n + 796.85 },
	AlgorithmTripleDES: func(n float64) float64 { return 0.046*n + 721.7 },
	AlgorithmRC4:       func(n float64) float64 { return 0.103*n + 210.331 },
}

// PerformanceCurve samples the complexity formula of the named algorithm from
// PerformanceInputStart to PerformanceInputEnd in PerformanceInputStep increments.
func PerformanceCurve(name string) ([]PerformancePoint, error) {
	complexity, ok := complexityFuncs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}

	points := make([]PerformancePoint, 0, (PerformanceInputEnd-PerformanceInputStart)/PerformanceInputStep+1)
	for n := PerformanceInputStart; n <= PerformanceInputEnd; n += PerformanceInputStep {
		points = append(points, PerformancePoint{
			InputSize:  n,
			Complexity: complexity(float64(n)),
		})
	}
	return points, nil
}
