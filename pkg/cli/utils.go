package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/semidash/curvex/engine"
)

// PromptLine displays a prompt and reads a full line of input from the
// user. The returned string is trimmed of surrounding whitespace
// (including the newline).
func PromptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptLineWithFzf reads a full line of input, treating a bare "/" as a
// request to launch fzf for file selection.
func PromptLineWithFzf(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	input := strings.TrimSpace(line)
	if input != "/" {
		return input, nil
	}
	sel, selErr := SelectFileWithFzf(".")
	if selErr == nil && sel != "" {
		fmt.Printf(" [fzf] %s\n", sel)
		return sel, nil
	}
	return PromptLine(prompt)
}

// LoadImageBytes reads a plot screenshot from disk for feeding straight
// into engine.DetectColors / engine.ExtractCurves, which do their own
// decoding and orientation correction.
func LoadImageBytes(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoadGraphConfig reads a GraphConfig from a JSON file on disk.
func LoadGraphConfig(path string) (engine.GraphConfig, error) {
	var cfg engine.GraphConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing graph config: %w", err)
	}
	return cfg, nil
}

// SaveMaskPNG writes a debug mask render to disk as a grayscale PNG.
func SaveMaskPNG(path string, m *engine.Mask) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, engine.RenderMask(m))
}

// PrintJSON writes v to stdout as indented JSON, the wire format hosts
// consume from detect/extract.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
