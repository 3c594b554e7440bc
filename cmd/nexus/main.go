package main

import "github.com/jwaiton/nexus/cli"

func main() {
	cli.Launch()
}
