package main

import "github.com/MatLN8/pdf-restruct/internal/cli"

func main() {
	cli.Execute()
}
