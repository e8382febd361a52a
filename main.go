package main

import "github.com/jsphweid/strumsheet/cmd"

func main() {
	cmd.Execute()
}
