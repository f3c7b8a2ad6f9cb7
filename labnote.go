package main

import "github.com/tesh254/labnote/cmd"

func main() {
	cmd.Execute()
}
