package main

import "github.com/zsh-afrangry/tdxingest/cmd"

func main() {
	cmd.Execute()
}
