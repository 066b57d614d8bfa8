// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/jdesc/cmd/jdesc"

func main() {
	cmd.Execute()
}
