package main

import "github.com/adriandez/de-zamacona-data/cmd"

func main() {
	cmd.Execute()
}
