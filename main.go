package main

import "league-assets/cmd"

func main() {
	cmd.Execute()
}
