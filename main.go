package main

import "github.com/cloud-ru/homecost-go/cmd"

func main() {
	cmd.Execute()
}
