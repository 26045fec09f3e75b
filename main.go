package main

import "rolo/cmd"

func main() {
	cmd.Execute()
}
