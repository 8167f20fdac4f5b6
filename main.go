package main

import "github.com/gaurav-prasanna/extdir/cmd"

func main() {
	cmd.Execute()
}
