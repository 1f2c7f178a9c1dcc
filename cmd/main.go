package main

import (
	cmd "github.com/kerbaras/mangatrack/cmd/mangatrack"
)

func main() {
	cmd.Execute()
}
