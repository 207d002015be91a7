package main

import "github.com/notargets/delaunayplot/cmd"

func main() {
	cmd.Execute()
}
