package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/semidash/curvex/engine"
)

func usage() {
	fmt.Println("Commands available:")
	fmt.Println("  o  - open a plot screenshot")
	fmt.Println("  d  - detect colors present in the loaded image")
	fmt.Println("  e  - extract curves (prompts for a graph config file)")
	fmt.Println("  m  - save a debug mask preview for a base color (and show it inline, if supported)")
	fmt.Println("  u  - check for updates")
	fmt.Println("  h  - show this help message")
	fmt.Println("  q  - quit")
}

// RunCLI drives the interactive shell: load a plot screenshot, run color
// detection and curve extraction against it, and inspect the results.
func RunCLI() {
	var inputImagePath string
	if len(os.Args) >= 2 {
		inputImagePath = os.Args[1]
	}

	var currentBytes []byte
	var currentPath string
	if inputImagePath != "" {
		b, err := LoadImageBytes(inputImagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", inputImagePath, err)
			os.Exit(1)
		}
		currentBytes = b
		currentPath = inputImagePath
		fmt.Printf("Loaded %s\n", currentPath)
	}

	fmt.Println("curvex interactive shell")
	usage()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		r, _, err := reader.ReadRune()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
			continue
		}

		switch r {
		case 'o':
			selected, selErr := SelectFileWithFzf(".")
			var newPath string
			if selErr != nil || selected == "" {
				newPath, _ = PromptLine("Enter path to a plot image (leave empty to cancel): ")
				if newPath == "" {
					fmt.Println("open cancelled")
					continue
				}
			} else {
				newPath = selected
			}
			b, err := LoadImageBytes(newPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", newPath, err)
				continue
			}
			currentBytes = b
			currentPath = newPath
			fmt.Printf("Loaded %s\n", currentPath)

		case 'd':
			if currentBytes == nil {
				fmt.Println("No image loaded. Press 'o' first.")
				continue
			}
			colors, err := engine.DetectColors(currentBytes)
			if err != nil {
				fmt.Fprintf(os.Stderr, "detect error: %v\n", err)
				continue
			}
			if err := PrintJSON(colors); err != nil {
				fmt.Fprintf(os.Stderr, "failed to print result: %v\n", err)
			}

		case 'e':
			if currentBytes == nil {
				fmt.Println("No image loaded. Press 'o' first.")
				continue
			}
			cfgPath, _ := PromptLine("Path to a graph config JSON file: ")
			if cfgPath == "" {
				fmt.Println("extract cancelled")
				continue
			}
			cfg, err := LoadGraphConfig(cfgPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to load graph config: %v\n", err)
				continue
			}
			colorList, _ := PromptLine("Comma-separated base colors to extract (e.g. red,blue): ")
			var names []string
			for _, n := range strings.Split(colorList, ",") {
				n = strings.TrimSpace(n)
				if n != "" {
					names = append(names, n)
				}
			}
			result, err := engine.ExtractCurves(currentBytes, names, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "extract error: %v\n", err)
				continue
			}
			if err := PrintJSON(result); err != nil {
				fmt.Fprintf(os.Stderr, "failed to print result: %v\n", err)
			}

		case 'm':
			if currentBytes == nil {
				fmt.Println("No image loaded. Press 'o' first.")
				continue
			}
			name, err := SelectColorWithFzf()
			if err != nil || name == "" {
				name, _ = PromptLine("Base color to preview (leave empty to cancel): ")
				if name == "" {
					fmt.Println("preview cancelled")
					continue
				}
			}
			out, _ := PromptLine("Output PNG path: ")
			if out == "" {
				fmt.Println("no filename provided")
				continue
			}
			rst, err := engine.DecodeImage(currentBytes)
			if err != nil {
				fmt.Fprintf(os.Stderr, "decode error: %v\n", err)
				continue
			}
			mask := engine.ClassifyMaskForDebug(rst, name)
			if err := SaveMaskPNG(out, mask); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write mask preview: %v\n", err)
				continue
			}
			fmt.Printf("Saved mask preview to %s\n", out)
			if PreviewSupported() {
				if err := PreviewImage(engine.RenderMask(mask), "png"); err != nil {
					fmt.Fprintf(os.Stderr, "inline preview failed: %v\n", err)
				}
			}

		case 'u':
			if err := CheckForUpdates(); err != nil {
				fmt.Fprintf(os.Stderr, "update check error: %v\n", err)
			}

		case 'h':
			usage()

		case 'q':
			fmt.Println("Exiting...")
			return

		default:
			// ignore other keys
		}
	}
}
