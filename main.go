package main

import "foodfunk/cmd"

func main() {
	cmd.Execute()
}
