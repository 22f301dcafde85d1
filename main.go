package main

import "decompile-server/cmd"

func main() {
	cmd.Execute()
}
