package main

import "github.com/xvierd/turskmind/cmd"

func main() {
	cmd.Execute()
}
