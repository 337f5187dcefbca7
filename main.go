package main

import "github.com/ecomlab/datagen/cmd"

func main() {
	cmd.Execute()
}
