package main

import "hooklog/cmd"

func main() {
	cmd.Execute()
}
