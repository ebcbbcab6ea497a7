package main

import "arttable/cmd"

func main() {
	cmd.Execute()
}
