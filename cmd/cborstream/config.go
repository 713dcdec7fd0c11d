package main

import (
	"encoding/json"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/synadia-labs/cbor.go/cbor"
)

// loadConfig merges an optional .jsonc defaults file with the
// command-line flags. A feature toggle is on if either the file or its
// flag turns it on; a flag cannot turn off a toggle the file enables.
// MaxDepth comes from the file when set there (non-zero), otherwise
// from --max-depth. Grounded on the pack's jsonc-plus-encoding/json
// config-loading pattern.
func loadConfig(cli *CLI) (cbor.Config, error) {
	cfg := cbor.Config{}

	if cli.Config != "" {
		raw, err := os.ReadFile(cli.Config)
		if err != nil {
			return cfg, err
		}
		if err := json.Unmarshal(jsonc.ToJSON(raw), &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.MaxDepth == 0 {
		cfg.MaxDepth = cli.MaxDepth
	}
	cfg.SelfDescribeTag = cfg.SelfDescribeTag || cli.SelfDescribe
	cfg.Stringref = cfg.Stringref || cli.Stringref
	cfg.MinimalDoubles = cfg.MinimalDoubles || cli.MinimalDoubles
	cfg.LenientUTF8 = cfg.LenientUTF8 || cli.LenientUTF8
	cfg.FullWidthInts = cfg.FullWidthInts || cli.FullWidthInts

	return cfg, nil
}
