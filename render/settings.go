// Copyright (c) 2026, The Boxwood Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// DebugSettingsData are debug flags that trace engine passes through
// [log/slog]. All of them are off by default.
type DebugSettingsData struct {

	// UpdateTrace logs every [ElementBase.MarkNeedsPaint] call.
	UpdateTrace bool

	// LayoutTrace logs constraints and chosen sizes as layout passes run.
	LayoutTrace bool

	// PaintTrace logs every element painted in a paint pass.
	PaintTrace bool
}

// DebugSettings are the currently active debug settings. They can be set
// directly or loaded from a TOML file with [OpenDebugSettings].
var DebugSettings DebugSettingsData

// OpenDebugSettings loads [DebugSettings] from the given TOML file.
func OpenDebugSettings(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(b, &DebugSettings)
}

// SaveDebugSettings saves [DebugSettings] to the given TOML file.
func SaveDebugSettings(filename string) error {
	b, err := toml.Marshal(&DebugSettings)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
