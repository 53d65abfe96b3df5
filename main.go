package main

import "khata/cmd"

func main() {
	cmd.Execute()
}
