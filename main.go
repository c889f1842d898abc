package main

import "github.com/ledgerlens/backend/cmd"

func main() {
	cmd.Execute()
}
