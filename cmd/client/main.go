package main

import "marketstore/cmd/client/cmd"

func main() {
	cmd.Execute()
}
