package main

import "github.com/omerhayat/lsh/cmd"

func main() {
	cmd.Execute()
}
