// Package config declares the root CLI structure parsed by kong.
package config

import (
	"github.com/dtlw/simput/internal/cmd"
)

// Log groups the logging flags shared by all commands.
type Log struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"SIMPUT_LOG_LEVEL"`
	File    string `help:"Write logs to this file instead of the console" env:"SIMPUT_LOG_FILE"`
	RawFile string `help:"Write raw protocol frames to this file" env:"SIMPUT_LOG_RAW_FILE"`
}

// CLI is the root command tree.
type CLI struct {
	Config string `help:"Path to a configuration file" type:"path"`
	Log    Log    `embed:"" prefix:"log."`

	Type      cmd.Type          `cmd:"" help:"Type text into the page"`
	Click     cmd.Click         `cmd:"" help:"Find an element and click it"`
	Scroll    cmd.Scroll        `cmd:"" help:"Scroll the page and wait for confirmation"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
