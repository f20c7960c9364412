package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/peninsulatransit/caltraind/types"
)

// Config is the on-disk configuration of caltraind
type Config struct {
	// Station is the station to watch
	Station types.Station `toml:"station"`
	// Direction selects which side of the arrival board generates notifications
	Direction types.Direction `toml:"direction"`
	// TrainTypes limits notifications to these service levels; empty means all
	TrainTypes []types.TrainType `toml:"train_types"`
	// RefreshSeconds is how often the departures page is polled
	RefreshSeconds int `toml:"refresh_seconds"`
	// NotifyAt holds the minutes-before-departure thresholds to notify at
	NotifyAt []uint16 `toml:"notify_at"`
	// NotifyAfter suppresses notifications before this local time of day,
	// in "15:04" format; empty disables the suppression
	NotifyAfter string `toml:"notify_after"`
	// RuntimeDir holds the pid file and the API socket
	RuntimeDir string `toml:"runtime_dir"`

	Slack SlackConfig `toml:"slack"`
}

// SlackConfig enables the optional Slack notification sink when both fields
// are set
type SlackConfig struct {
	APIToken string `toml:"api_token"`
	Channel  string `toml:"channel"`
}

// LoadConfig reads and validates the configuration file at path
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		Station:        types.PaloAlto,
		Direction:      types.Northbound,
		RefreshSeconds: 20,
		RuntimeDir:     "/tmp/caltraind",
	}
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("cannot decode %s: %w", path, err)
	}
	if len(config.TrainTypes) == 0 {
		config.TrainTypes = []types.TrainType{types.Local, types.Limited, types.BabyBullet}
	}
	if config.RefreshSeconds <= 0 {
		return nil, fmt.Errorf("refresh_seconds must be positive, got %d", config.RefreshSeconds)
	}
	if len(config.NotifyAt) == 0 {
		return nil, fmt.Errorf("notify_at must list at least one threshold")
	}
	if (config.Slack.APIToken == "") != (config.Slack.Channel == "") {
		return nil, fmt.Errorf("slack requires both api_token and channel")
	}
	return config, nil
}
