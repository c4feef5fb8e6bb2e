package main

import "github.com/ValentinKolb/fmtsize/cmd"

func main() {
	cmd.Execute()
}
