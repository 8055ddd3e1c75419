// This file holds build-time variables. TestMode is meant to be set through
// -ldflags="-X github.com/nobletooth/chain/pkg/utils.TestMode=true" when running tests,
// which turns invariant violations into panics instead of logged errors.

package utils

import (
	"log/slog"
	"strconv"
)

var (
	TestMode   string // Should be true when running tests.
	IsTestMode bool
)

func init() {
	if len(TestMode) > 0 {
		if isTestMode, err := strconv.ParseBool(TestMode); err == nil {
			IsTestMode = isTestMode
		} else {
			slog.Warn("Failed to parse TestMode build flag, defaulting to false", "error", err)
		}
	}
}
