package main

import "aicommit/cmd"

func main() {
	cmd.Execute()
}
