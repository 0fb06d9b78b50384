package main

import "marketstore/cmd/server/cmd"

func main() {
	cmd.Execute()
}
