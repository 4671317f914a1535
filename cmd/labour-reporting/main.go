package main

import "hangarops/labour-reporting/internal/cli"

func main() {
	cli.Execute()
}
