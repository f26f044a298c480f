package main

import "github.com/wetrycode/apiresponse/cmd"

func main() {
	cmd.Execute()
}
