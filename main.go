package main

import "github.com/remindo/remindo/cmd"

func main() {
	cmd.Execute()
}
