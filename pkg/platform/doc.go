// SPDX-License-Identifier: MPL-2.0

// Package platform centralizes the runtime.GOOS names used for
// platform-specific branches such as config directory lookup.
package platform
