// SPDX-License-Identifier: MPL-2.0

package main

import cmd "devc-cli/cmd/devc"

func main() {
	cmd.Execute()
}
