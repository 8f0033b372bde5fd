package engine

import "fmt"

// Validate checks a GraphConfig for invalid axis configuration: a
// log-scale axis with a non-positive endpoint, a degenerate or inverted
// axis range, or an unrecognized scale type. It's exported as its own
// operation so a host can validate axis fields as the user edits them,
// without needing to run a full extraction.
func (cfg GraphConfig) Validate() error {
	if cfg.XScaleType != ScaleLinear && cfg.XScaleType != ScaleLog {
		return newError(KindInvalidConfig, fmt.Sprintf("unrecognized x_scale_type %q", cfg.XScaleType), nil)
	}
	if cfg.YScaleType != ScaleLinear && cfg.YScaleType != ScaleLog {
		return newError(KindInvalidConfig, fmt.Sprintf("unrecognized y_scale_type %q", cfg.YScaleType), nil)
	}
	if cfg.XMin >= cfg.XMax {
		return newError(KindInvalidConfig, "x_min must be less than x_max", nil)
	}
	if cfg.YMin >= cfg.YMax {
		return newError(KindInvalidConfig, "y_min must be less than y_max", nil)
	}
	if cfg.XScaleType == ScaleLog && (cfg.XMin <= 0 || cfg.XMax <= 0) {
		return newError(KindInvalidConfig, "log x axis requires x_min and x_max > 0", nil)
	}
	if cfg.YScaleType == ScaleLog && (cfg.YMin <= 0 || cfg.YMax <= 0) {
		return newError(KindInvalidConfig, "log y axis requires y_min and y_max > 0", nil)
	}
	return nil
}

// withDefaults fills in scale factors left at their zero value with the
// wire default of 1.0.
func (cfg GraphConfig) withDefaults() GraphConfig {
	if cfg.XScale == 0 {
		cfg.XScale = 1.0
	}
	if cfg.YScale == 0 {
		cfg.YScale = 1.0
	}
	return cfg
}
