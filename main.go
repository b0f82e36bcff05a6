package main

import "order-manager/cmd"

func main() {
	cmd.Execute()
}
