package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/azanderson/gotupper"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Must pass an image file")
		os.Exit(1)
	}

	fp, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer fp.Close()

	i, _, err := image.Decode(fp)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println(gotupper.Encode(gotupper.FromImage(i)))
}
