package main

import "csvmerge/cmd"

func main() {
	cmd.Execute()
}
