package main

import "github.com/jhoicas/compras-dashboard/internal/cmd"

func main() {
	cmd.Execute()
}
