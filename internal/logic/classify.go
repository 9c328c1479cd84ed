package logic

// MoisturePercent converts a raw ADC reading to 0–100 using the two
// calibration points. Readings at DryRaw map to 0, at WetRaw to 100, and
// anything outside the calibrated range is clamped before interpolation.
func (c Calibration) MoisturePercent(raw int) int {
	if raw > c.DryRaw {
		raw = c.DryRaw
	}
	if raw < c.WetRaw {
		raw = c.WetRaw
	}
	return (c.DryRaw - raw) * 100 / (c.DryRaw - c.WetRaw)
}

// Classify evaluates the four predicates for a sample. Pure; no side
// effects on state.
func (t Thresholds) Classify(s Sample) Flags {
	return Flags{
		Dry:  s.MoisturePct < t.DryPct,
		Dark: s.Light < t.Dark,
		Cold: s.TemperatureC < t.ColdC,
		Hot:  s.TemperatureC > t.HotC,
	}
}
