package main

import "github.com/xll-gen/filepacker/cmd"

// main is the entry point of the filepacker CLI.
func main() {
	cmd.Execute()
}
