// Command curvex extracts digitized trace data from semiconductor-datasheet
// plot screenshots. Run with no arguments for the interactive shell, or
// with a subcommand for scripted use.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/semidash/curvex/pkg/cli"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  curvex                           interactive shell")
	fmt.Fprintln(os.Stderr, "  curvex detect <image>            print detected colors as JSON")
	fmt.Fprintln(os.Stderr, "  curvex extract <image> <config>  print an extraction result as JSON")
	fmt.Fprintln(os.Stderr, "  curvex update                     check for a newer release")
}

func main() {
	// Optional .env for PREVIEW_DEBUG / PREVIEW_BACKEND / SIXEL_PREVIEW; a
	// missing file is not an error.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		cli.RunCLI()
		return
	}

	var err error
	switch os.Args[1] {
	case "detect":
		err = cli.RunDetect(os.Args[2:])
	case "extract":
		err = cli.RunExtract(os.Args[2:])
	case "update":
		err = cli.CheckForUpdates()
	case "-h", "--help", "help":
		usage()
		return
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
