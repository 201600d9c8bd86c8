package main

import "github.com/gaurav-prasanna/newsmail/cmd"

func main() {
	cmd.Execute()
}
