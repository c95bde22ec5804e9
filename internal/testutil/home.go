// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"runtime"
	"testing"

	"github.com/invowk/pathmaster/pkg/platform"
)

// SetHomeDir points the platform's home and config directory variables at
// dir and returns a cleanup function restoring them.
//
//   - Windows: USERPROFILE and APPDATA
//   - Linux/macOS: HOME and XDG_CONFIG_HOME (unset)
func SetHomeDir(t testing.TB, dir string) func() {
	t.Helper()

	switch runtime.GOOS {
	case platform.Windows:
		restoreProfile := MustSetenv(t, "USERPROFILE", dir)
		restoreAppData := MustSetenv(t, "APPDATA", dir)
		return func() {
			restoreAppData()
			restoreProfile()
		}
	default:
		restoreHome := MustSetenv(t, "HOME", dir)
		restoreXDG := MustUnsetenv(t, "XDG_CONFIG_HOME")
		return func() {
			restoreXDG()
			restoreHome()
		}
	}
}
