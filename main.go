package main

import "madeireira-orcamento/cmd"

func main() {
	cmd.Execute()
}
