package main

import "sectionkit/cmd"

func main() {
	cmd.Execute()
}
