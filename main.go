// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/pathmaster/cmd/pathmaster"

func main() {
	cmd.Execute()
}
