// SPDX-License-Identifier: MPL-2.0

package platform

// runtime.GOOS values that change where configuration lives and how the
// search path separator and home directory are resolved.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
