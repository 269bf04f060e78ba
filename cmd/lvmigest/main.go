// SPDX-License-Identifier: MIT

package main

import "github.com/katalvlaran/lvmigest/internal/cli"

func main() {
	cli.Execute()
}
