package main

import "github.com/naka-gawa/commit-weekday/cmd"

func main() {
	cmd.Execute()
}
