package field

// ApplyInit runs the init transform over freshly initialized values. No
// truncation is applied on load.
func (c *Config) ApplyInit(values []float64) {
	c.bindings[StageInit].Func.ApplySlice(values)
}

// ApplyInput runs the input transform over values loaded from the forward
// model.
func (c *Config) ApplyInput(values []float64) {
	c.bindings[StageInput].Func.ApplySlice(values)
}

// Export prepares values for the forward model: output transform first,
// then truncation. values is modified in place.
func (c *Config) Export(values []float64) {
	c.bindings[StageOutput].Func.ApplySlice(values)
	c.Truncate(values)
}

// Truncate clamps values to the configured bounds. Only bounds whose flag is
// set take part.
func (c *Config) Truncate(values []float64) {
	lo, hi := c.truncation.Has(TruncateMin), c.truncation.Has(TruncateMax)
	if !lo && !hi {
		return
	}
	for i, v := range values {
		if lo && v < c.minValue {
			values[i] = c.minValue
		}
		if hi && v > c.maxValue {
			values[i] = c.maxValue
		}
	}
}
