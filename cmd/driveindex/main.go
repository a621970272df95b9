package main

import "github.com/dbsmedya/driveindex/cmd/driveindex/cmd"

func main() {
	cmd.Execute()
}
