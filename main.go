package main

import "github.com/theirongolddev/worthit/cmd"

func main() {
	cmd.Execute()
}
