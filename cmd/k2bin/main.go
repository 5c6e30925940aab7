package main

import (
	"fmt"
	"os"

	"github.com/azanderson/gotupper"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Must pass a plot number")
		os.Exit(1)
	}

	k, err := gotupper.ParseK(os.Args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println(gotupper.BitString(k))
}
