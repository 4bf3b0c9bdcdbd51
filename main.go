package main

import "github.com/vfxpipe/scaffold/cmd"

func main() {
	cmd.Execute()
}
