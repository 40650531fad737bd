package main

import "github.com/idilsaglam/users/internal/cli"

func main() {
	cli.Main()
}
