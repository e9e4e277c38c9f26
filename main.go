package main

import "github.com/dotcommander/lifescore/cmd"

func main() {
	cmd.Execute()
}
