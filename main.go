package main

import "recipe-box/cmd"

func main() {
	cmd.Execute()
}
