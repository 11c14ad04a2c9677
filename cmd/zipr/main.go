// Command zipr extracts the single entry from a ZIP archive written by
// cmd/zipw (or any conforming single-entry archive using method 0 or 8).
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/coreos/minideflate/internal/config"
	"github.com/coreos/minideflate/internal/corelog"
	"github.com/coreos/minideflate/internal/flagutil"
	"github.com/coreos/minideflate/zip"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("zipr", flag.ContinueOnError)
	var loglevel flagutil.LogLevelFlag
	fs.Var(&loglevel, "loglevel", "log level: CRITICAL, ERROR, WARNING, INFO, or DEBUG")
	configPath := fs.String("config", "", "optional YAML file supplying defaults for unset flags")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *configPath != "" {
		raw, err := ioutil.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "zipr:", err)
			return 1
		}
		if err := config.SetFlagsFromYaml(fs, raw); err != nil {
			fmt.Fprintln(os.Stderr, "zipr:", err)
			return 1
		}
	}
	corelog.SetLevel(loglevel.Level())

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: zipr [-loglevel L] [-config FILE] <input.zip>")
		return 1
	}
	inputPath := fs.Arg(0)

	data, err := ioutil.ReadFile(inputPath)
	if err != nil {
		corelog.Errorf("reading %s: %v", inputPath, err)
		return 1
	}

	entry, err := zip.ReadFile(data)
	if err != nil {
		corelog.Errorf("reading archive %s: %v", inputPath, err)
		return 2
	}

	outputPath := entry.Name
	if entry.Method == zip.Deflated {
		outputPath = entry.Name + ".deflate"
		corelog.Infof("%s is DEFLATE-compressed; writing %s (run inflate to recover it)", entry.Name, outputPath)
	}

	if err := ioutil.WriteFile(outputPath, entry.Payload, 0644); err != nil {
		corelog.Errorf("writing %s: %v", outputPath, err)
		return 2
	}

	corelog.Infof("%s: extracted %s (%d bytes) -> %s", inputPath, entry.Name, len(entry.Payload), outputPath)
	return 0
}
