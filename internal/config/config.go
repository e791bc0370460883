//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package config holds globally available configuration variables, either
// left at their defaults or overridden by a TOML file on disk.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/franky-core/internal/util"
)

// globally available config values.
var (
	// ConfFile is the path to the TOML file read by Setup, relative to
	// the working directory.
	ConfFile = "./config.toml"

	// LogLevel is the general log level, 0 (critical) through 5 (debug).
	LogLevel = 4

	// Settings is the configuration read from ConfFile, overlaid on
	// the defaults set in init().
	Settings conf

	initialized = false
)

type conf struct {
	Search searchConfiguration
	Eval   evalConfiguration
	TT     ttConfiguration
}

func init() {
	setupSearchDefaults(&Settings.Search)
	setupEvalDefaults(&Settings.Eval)
	setupTTDefaults(&Settings.TT)
}

// Setup reads the configuration file named by ConfFile, overlaying
// defaults with whatever it finds there. Safe to call more than once;
// only the first call takes effect. A missing or unreadable file is not
// an error — the defaults already in effect are used as-is, so
// configuration is always optional.
func Setup() {
	if initialized {
		return
	}
	if _, err := toml.DecodeFile(ConfFile, &Settings); err != nil {
		log.Println("config file not found or invalid, using defaults:", err)
	}
	// A TOML file can set AspirationWindow to 0 or negative, which would
	// collapse or invert the [lastScore-window, lastScore+window] bound;
	// clamp it to a sane minimum the way the rest of the engine treats
	// external input at this boundary.
	Settings.Search.AspirationWindow = int32(util.Max(int(Settings.Search.AspirationWindow), 1))
	initialized = true
}
