package main

import "rlz/cmd/rlz/cmd"

func main() {
	cmd.Execute()
}
