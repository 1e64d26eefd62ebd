package utils

// Clamp01 зажимает значение в диапазон [0, 1].
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Clamp зажимает значение в диапазон [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp - линейная интерполяция между a и b по коэффициенту t (t зажимается в [0,1]).
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}
