package cli

import (
	"fmt"

	"github.com/semidash/curvex/engine"
)

// RunDetect implements the `curvex detect <image>` subcommand: decode the
// image, run engine.DetectColors, print the result as JSON.
func RunDetect(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("detect: expected an image path")
	}
	b, err := LoadImageBytes(args[0])
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}
	colors, err := engine.DetectColors(b)
	if err != nil {
		return fmt.Errorf("detect: %w", err)
	}
	return PrintJSON(colors)
}

// RunExtract implements the `curvex extract <image> <config>` subcommand:
// decode the image, load the graph config, run engine.ExtractCurves for
// every palette base color, print the result as JSON.
func RunExtract(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("extract: expected an image path and a graph config path")
	}
	b, err := LoadImageBytes(args[0])
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	cfg, err := LoadGraphConfig(args[1])
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	result, err := engine.ExtractCurves(b, engine.BaseColorNames(), cfg)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	return PrintJSON(result)
}
