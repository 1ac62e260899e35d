// SPDX-License-Identifier: MPL-2.0

package main

import cmd "shadowdiag/cmd/shadowdiag"

func main() {
	cmd.Execute()
}
