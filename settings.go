// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import (
	"os"

	"cogentcore.org/sceneview/math32"
	"github.com/pelletier/go-toml/v2"
)

// Settings are the user-tunable viewer settings, covering the orbit
// interaction feel and render quality. They are plain data with TOML
// tags and persist via [SaveSettings] / [OpenSettings].
type Settings struct {
	// Sensitivity converts drag point deltas to radians of orbit
	// rotation per tick.
	Sensitivity float32 `toml:"sensitivity"`

	// Friction is the per-tick orbit velocity decay factor, in (0, 1].
	Friction float32 `toml:"friction"`

	// MinYaw and MaxYaw bound the orbit yaw angle, in radians.
	MinYaw float32 `toml:"min-yaw"`
	MaxYaw float32 `toml:"max-yaw"`

	// MinPitch and MaxPitch bound the orbit pitch angle, in radians.
	MinPitch float32 `toml:"min-pitch"`
	MaxPitch float32 `toml:"max-pitch"`

	// MinZoom and MaxZoom bound the orbit camera distance.
	MinZoom float32 `toml:"min-zoom"`
	MaxZoom float32 `toml:"max-zoom"`

	// ZoomEnabled gates pinch-to-zoom gesture processing.
	ZoomEnabled bool `toml:"zoom-enabled"`

	// Multisample is the number of samples the live renderer should use
	// for multisampled antialiasing; 0 or 1 disables it.
	Multisample int `toml:"multisample"`
}

// Defaults sets default settings values.
func (st *Settings) Defaults() {
	st.Sensitivity = 0.01
	st.Friction = 0.05
	st.MinYaw = -math32.Infinity
	st.MaxYaw = math32.Infinity
	st.MinPitch = -math32.Pi / 2
	st.MaxPitch = math32.Pi / 2
	st.MinZoom = 0.5
	st.MaxZoom = 20
	st.ZoomEnabled = true
	st.Multisample = 4
}

// DefaultSettings returns a new [Settings] with default values.
func DefaultSettings() Settings {
	var st Settings
	st.Defaults()
	return st
}

// OpenSettings reads settings from the given TOML file, applying
// defaults first so that absent keys keep their default values.
func OpenSettings(filename string) (Settings, error) {
	st := DefaultSettings()
	data, err := os.ReadFile(filename)
	if err != nil {
		return st, err
	}
	if err := toml.Unmarshal(data, &st); err != nil {
		return st, err
	}
	return st, nil
}

// SaveSettings writes the given settings to the given TOML file.
func SaveSettings(st Settings, filename string) error {
	data, err := toml.Marshal(st)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o666)
}
