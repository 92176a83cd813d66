// Package cli wraps promptui for the interactive tools in this module.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/manifoldco/promptui"
)

// ErrEmptyInput is returned by validators when nothing was typed.
var ErrEmptyInput = errors.New("you must enter something")

// ErrClosed is returned when the user interrupts a prompt (Ctrl-C or Ctrl-D).
var ErrClosed = errors.New("prompt closed")

func closed(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, io.EOF) {
		return ErrClosed
	}

	return err
}

// PromptConfirm asks a yes/no question. Answering no is not an error.
func PromptConfirm(label string) (bool, error) {
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
	}

	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}

		return false, closed(err)
	}

	return true, nil
}

// PromptString asks for a non-empty line. If validate is non-nil it runs on
// every keystroke and blocks submission until it passes.
func PromptString(label string, validate func(string) error) (string, error) {
	prompt := promptui.Prompt{
		Label: label,
		Validate: func(s string) error {
			if len(s) == 0 {
				return ErrEmptyInput
			}

			if validate != nil {
				return validate(s)
			}

			return nil
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	txt, err := prompt.Run()

	return txt, closed(err)
}

// PromptStringEmptyOk asks for a line that may be empty.
func PromptStringEmptyOk(label string) (string, error) {
	prompt := promptui.Prompt{
		Label:  label,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	}

	txt, err := prompt.Run()

	return txt, closed(err)
}

// Select shows a menu and returns the chosen item.
func Select(label string, items ...string) (string, error) {
	sel := &promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}

	_, value, err := sel.Run()

	return value, closed(err)
}
