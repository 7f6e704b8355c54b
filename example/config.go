package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config describes a simulated election.
type Config struct {
	// Nodes is the number of mutually distrusting tally parties.
	Nodes int `toml:"nodes"`
	// Choices is the number of distinct options a ballot may select.
	Choices int `toml:"choices"`
	// Ballots lists the choice cast by each voter, in identifier order.
	Ballots []int `toml:"ballots"`
}

func defaultConfig() Config {
	return Config{
		Nodes:   3,
		Choices: 3,
		Ballots: []int{1, 1, 0, 2, 1},
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.Nodes < 1 {
		return Config{}, fmt.Errorf("%s: at least one node is required", path)
	}
	return cfg, nil
}
