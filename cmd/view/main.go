// Command view prints a P3 PNM image as 256-color terminal cells.
//
// Usage: view [-t r,g,b] image.pnm
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mgutz/ansi"

	"github.com/ansrk/keyloop/texture"
)

func main() {
	transparency := flag.String("t", "", "transparency color as r,g,b (0-255 each)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: view [-t r,g,b] image.pnm")
		os.Exit(1)
	}

	var opts []texture.LoadOption
	if *transparency != "" {
		var r, g, b int
		if _, err := fmt.Sscanf(*transparency, "%d,%d,%d", &r, &g, &b); err != nil {
			fmt.Fprintf(os.Stderr, "bad transparency color %q\n", *transparency)
			os.Exit(1)
		}
		opts = append(opts, texture.WithTransparency(r, g, b))
	}

	tex, err := texture.LoadPNM(flag.Arg(0), opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reset := ansi.ColorCode("reset")
	for y := 0; y < tex.Height(); y++ {
		for x := 0; x < tex.Width(); x++ {
			c, err := tex.At(x, y)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if c.A == 0 {
				fmt.Print("  ")
				continue
			}
			fmt.Printf("%s  %s", ansi.ColorCode(fmt.Sprintf("default:%d", cube(c))), reset)
		}
		fmt.Println()
	}
}

// cube maps a color to the closest entry of the 6x6x6 xterm color cube.
func cube(c texture.Color) int {
	c = c.Clamp()
	r := int(c.R*5 + 0.5)
	g := int(c.G*5 + 0.5)
	b := int(c.B*5 + 0.5)
	return 16 + 36*r + 6*g + b
}
