// Command vendrmcp serves the Vendr pricing tools over MCP.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newCLI()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(1)
	}
}
