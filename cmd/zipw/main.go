// Command zipw wraps one file in a single-entry ZIP archive, DEFLATE-
// compressing its contents.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/coreos/minideflate/flate"
	"github.com/coreos/minideflate/internal/config"
	"github.com/coreos/minideflate/internal/corelog"
	"github.com/coreos/minideflate/internal/flagutil"
	"github.com/coreos/minideflate/zip"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("zipw", flag.ContinueOnError)
	var loglevel flagutil.LogLevelFlag
	fs.Var(&loglevel, "loglevel", "log level: CRITICAL, ERROR, WARNING, INFO, or DEBUG")
	configPath := fs.String("config", "", "optional YAML file supplying defaults for unset flags")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *configPath != "" {
		raw, err := ioutil.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "zipw:", err)
			return 1
		}
		if err := config.SetFlagsFromYaml(fs, raw); err != nil {
			fmt.Fprintln(os.Stderr, "zipw:", err)
			return 1
		}
	}
	corelog.SetLevel(loglevel.Level())

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "usage: zipw [-loglevel L] [-config FILE] <output.zip> <inputfile>")
		return 1
	}
	outputPath := fs.Arg(0)
	inputPath := fs.Arg(1)

	input, err := ioutil.ReadFile(inputPath)
	if err != nil {
		corelog.Errorf("reading %s: %v", inputPath, err)
		return 1
	}

	compressed := flate.Encode(input)

	out, err := os.Create(outputPath)
	if err != nil {
		corelog.Errorf("creating %s: %v", outputPath, err)
		return 2
	}
	defer out.Close()

	name := filepath.Base(inputPath)
	if err := zip.WriteFile(out, name, zip.Deflated, compressed, len(input)); err != nil {
		corelog.Errorf("writing archive %s: %v", outputPath, err)
		return 2
	}

	corelog.Infof("%s: %d bytes -> %d bytes in %s as %s", inputPath, len(input), len(compressed), outputPath, name)
	return 0
}
