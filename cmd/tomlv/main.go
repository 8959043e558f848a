package main

import "github.com/dzjyyds666/toml/cmd"

func main() {
	cmd.Execute()
}
