// cmd/main.go
package main

import cmd "github.com/mwiater/knapbench/cmd/knapbench"

// main starts the knapbench CLI by delegating to the cobra root command.
func main() {
	cmd.Execute()
}
