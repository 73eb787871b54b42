package main

import "notary-profile/internal/cli"

func main() {
	cli.Execute()
}
