// Command deflate compresses a file into a single fixed-Huffman DEFLATE
// block.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/coreos/minideflate/flate"
	"github.com/coreos/minideflate/internal/config"
	"github.com/coreos/minideflate/internal/corelog"
	"github.com/coreos/minideflate/internal/flagutil"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("deflate", flag.ContinueOnError)
	var loglevel flagutil.LogLevelFlag
	fs.Var(&loglevel, "loglevel", "log level: CRITICAL, ERROR, WARNING, INFO, or DEBUG")
	configPath := fs.String("config", "", "optional YAML file supplying defaults for unset flags")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *configPath != "" {
		raw, err := ioutil.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "deflate:", err)
			return 1
		}
		if err := config.SetFlagsFromYaml(fs, raw); err != nil {
			fmt.Fprintln(os.Stderr, "deflate:", err)
			return 1
		}
	}
	corelog.SetLevel(loglevel.Level())

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: deflate [-loglevel L] [-config FILE] <input>")
		return 1
	}
	inputPath := fs.Arg(0)

	input, err := ioutil.ReadFile(inputPath)
	if err != nil {
		corelog.Errorf("reading %s: %v", inputPath, err)
		return 1
	}

	compressed := flate.Encode(input)

	outputPath := inputPath + ".deflate"
	if err := ioutil.WriteFile(outputPath, compressed, 0644); err != nil {
		corelog.Errorf("writing %s: %v", outputPath, err)
		return 2
	}

	ratio := 0.0
	if len(input) > 0 {
		ratio = float64(len(compressed)) / float64(len(input))
	}
	corelog.Infof("%s: %d bytes -> %d bytes (%.2fx) -> %s", inputPath, len(input), len(compressed), ratio, outputPath)
	return 0
}
