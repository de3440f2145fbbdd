package main

import "github.com/alexiusacademia/servotorque/cmd"

func main() {
	cmd.Execute()
}
