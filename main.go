package main

import "github.com/KostasZigo/looseobj/cmd"

func main() {
	cmd.Execute()
}
