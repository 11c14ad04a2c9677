package config

import (
	"flag"
	"testing"
)

func TestSetFlagsFromYamlFillsUnsetFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	loglevel := fs.String("loglevel", "INFO", "")

	doc := []byte("LOGLEVEL: DEBUG\n")
	if err := SetFlagsFromYaml(fs, doc); err != nil {
		t.Fatalf("SetFlagsFromYaml: %v", err)
	}
	if *loglevel != "DEBUG" {
		t.Errorf("loglevel = %q, want DEBUG", *loglevel)
	}
}

func TestSetFlagsFromYamlDoesNotOverrideExplicitFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	loglevel := fs.String("loglevel", "INFO", "")
	if err := fs.Set("loglevel", "ERROR"); err != nil {
		t.Fatalf("fs.Set: %v", err)
	}

	doc := []byte("LOGLEVEL: DEBUG\n")
	if err := SetFlagsFromYaml(fs, doc); err != nil {
		t.Fatalf("SetFlagsFromYaml: %v", err)
	}
	if *loglevel != "ERROR" {
		t.Errorf("loglevel = %q, want ERROR (explicit flag must win)", *loglevel)
	}
}

func TestSetFlagsFromYamlInvalidValue(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Int("retries", 3, "")

	doc := []byte("RETRIES: not-a-number\n")
	if err := SetFlagsFromYaml(fs, doc); err == nil {
		t.Fatalf("expected error for non-numeric value assigned to an int flag")
	}
}
