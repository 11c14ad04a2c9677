// Command inflate decompresses a DEFLATE stream written by cmd/deflate
// (or any conforming encoder, within the BTYPE this package supports).
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/coreos/minideflate/flate"
	"github.com/coreos/minideflate/internal/config"
	"github.com/coreos/minideflate/internal/corelog"
	"github.com/coreos/minideflate/internal/flagutil"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("inflate", flag.ContinueOnError)
	var loglevel flagutil.LogLevelFlag
	fs.Var(&loglevel, "loglevel", "log level: CRITICAL, ERROR, WARNING, INFO, or DEBUG")
	configPath := fs.String("config", "", "optional YAML file supplying defaults for unset flags")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *configPath != "" {
		raw, err := ioutil.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "inflate:", err)
			return 1
		}
		if err := config.SetFlagsFromYaml(fs, raw); err != nil {
			fmt.Fprintln(os.Stderr, "inflate:", err)
			return 1
		}
	}
	corelog.SetLevel(loglevel.Level())

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inflate [-loglevel L] [-config FILE] <input.deflate>")
		return 1
	}
	inputPath := fs.Arg(0)

	compressed, err := ioutil.ReadFile(inputPath)
	if err != nil {
		corelog.Errorf("reading %s: %v", inputPath, err)
		return 1
	}

	output, err := flate.Decode(compressed)
	if err != nil {
		corelog.Errorf("decoding %s: %v", inputPath, err)
		return 2
	}

	outputPath := strings.TrimSuffix(inputPath, ".deflate")
	if outputPath == inputPath {
		outputPath = inputPath + ".out"
		corelog.Warningf("%s has no .deflate suffix; writing to %s", inputPath, outputPath)
	}
	if err := ioutil.WriteFile(outputPath, output, 0644); err != nil {
		corelog.Errorf("writing %s: %v", outputPath, err)
		return 2
	}

	corelog.Infof("%s: %d bytes -> %d bytes -> %s", inputPath, len(compressed), len(output), outputPath)
	return 0
}
