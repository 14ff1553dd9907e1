// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sceneview

import "log/slog"

// UserLevel is the verbosity [slog.Level] that the user has selected
// for what diagnostic messages should be shown. Messages at levels at
// or above this level are logged. The default is [slog.LevelWarn].
// Raw loader and producer errors are logged at [slog.LevelDebug]; only
// the collapsed [ErrUnableToLoad] is ever surfaced to callers.
var UserLevel = slog.LevelWarn

// logDebug logs the given message at the Debug level if [UserLevel]
// permits it.
func logDebug(msg string, args ...any) {
	if UserLevel <= slog.LevelDebug {
		slog.Debug(msg, args...)
	}
}

// logError logs the given error at the Error level if it is non-nil,
// and returns it either way.
func logError(err error) error {
	if err != nil && UserLevel <= slog.LevelError {
		slog.Error(err.Error())
	}
	return err
}
