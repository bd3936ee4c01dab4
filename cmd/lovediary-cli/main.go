package main

import "lovediary/cmd/lovediary-cli/cmd"

func main() {
	cmd.Execute()
}
