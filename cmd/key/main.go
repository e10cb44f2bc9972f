package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mgutz/ansi"

	"github.com/ansrk/keyloop/keyboard"
)

func main() {
	kb, err := keyboard.Open()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer kb.Close()

	named := ansi.ColorFunc("green+b")
	literal := ansi.ColorFunc("cyan")

	fmt.Print("Press keys (ESC twice to exit)\r\n")
	escCount := 0
	for {
		tok, err := kb.Next(true)
		if err != nil {
			var unknown *keyboard.UnknownSequenceError
			var malformed *keyboard.MalformedSequenceError
			if errors.As(err, &unknown) || errors.As(err, &malformed) {
				fmt.Printf("%v\r\n", err)
				continue
			}
			fmt.Fprintf(os.Stderr, "%v\r\n", err)
			return
		}
		if tok.Key == keyboard.KeyRune {
			fmt.Printf("%s\r\n", literal(tok.String()))
			continue
		}
		fmt.Printf("%s\r\n", named(tok.String()))
		if tok.Key == keyboard.KeyEsc {
			if escCount == 0 {
				fmt.Print("Press ESC again to exit\r\n")
			} else {
				fmt.Print("bye!\r\n")
			}
			escCount++
		}
		if escCount > 1 {
			break
		}
	}
}
