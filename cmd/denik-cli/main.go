package main

import "github.com/nfrund/denik/cmd/denik-cli/cmd"

func main() {
	cmd.Execute()
}
