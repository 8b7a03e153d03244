package main

import "github.com/glennballman/Community-Canvas-sub001/cmd"

func main() {
	cmd.Execute()
}
