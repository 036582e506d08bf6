package main

import "textra/cmd"

func main() {
	cmd.Execute()
}
