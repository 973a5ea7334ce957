package calculator

import (
	"errors"
	"math"
)

// CalculateMean returns the arithmetic mean of values.
func CalculateMean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, errors.New("no values for mean calculation")
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values)), nil
}

// CalculateStdDev returns the population standard deviation of values.
func CalculateStdDev(values []float64) (float64, error) {
	mean, err := CalculateMean(values)
	if err != nil {
		return 0, err
	}
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values))), nil
}

// CalculateRange scans values and returns the highest and lowest.
func CalculateRange(values []float64) (high, low float64, err error) {
	if len(values) == 0 {
		return 0, 0, errors.New("no values provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, v := range values {
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}
	return high, low, nil
}

// CalculateWinRate returns won/total as a whole percentage, rounded half away from zero.
// Zero total yields 0.
func CalculateWinRate(won, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(won) / float64(total) * 100))
}
