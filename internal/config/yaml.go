// Package config fills in flags the caller left unset on the command line
// from an optional YAML file, adapted from the teacher's
// yamlutil.SetFlagsFromYaml. This module pins gopkg.in/yaml.v2, so unlike
// the teacher's original (yaml.v1) the document unmarshals into
// map[string]interface{} and values are stringified before being handed to
// flag.Set.
package config

import (
	"flag"
	"fmt"
	"strings"

	"gopkg.in/yaml.v2"
)

// SetFlagsFromYaml visits every flag registered on fs; for each one not
// already set on the command line, it looks up REPLACE(UPPERCASE(name),
// '-', '_') in rawYaml and, if present, sets the flag from it.
func SetFlagsFromYaml(fs *flag.FlagSet, rawYaml []byte) error {
	conf := make(map[string]interface{})
	if err := yaml.Unmarshal(rawYaml, conf); err != nil {
		return err
	}

	alreadySet := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		alreadySet[f.Name] = true
	})

	var firstErr error
	fs.VisitAll(func(f *flag.Flag) {
		if alreadySet[f.Name] || firstErr != nil {
			return
		}
		tag := strings.ToUpper(strings.Replace(f.Name, "-", "_", -1))
		if tag == "" {
			return
		}
		raw, ok := conf[tag]
		if !ok {
			return
		}
		val := fmt.Sprintf("%v", raw)
		if err := fs.Set(f.Name, val); err != nil {
			firstErr = fmt.Errorf("config: invalid value %q for %s: %v", val, tag, err)
		}
	})
	return firstErr
}
