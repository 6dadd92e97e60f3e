package main

import "github.com/rami3l/monty/cmd"

func main() { cmd.Execute() }
