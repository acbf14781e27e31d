package main

import "github.com/toby1364/vm64asm/cmd"

func main() {
	cmd.Execute()
}
