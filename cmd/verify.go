package main

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/mental-rps/domain/commitment"
)

// runVerify checks a printed disclosure: key, house move and the HMAC shown
// before the choice.
func runVerify(out io.Writer, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("verify needs <key> <move> <hmac>, got %d arguments", len(args))
	}
	key, move, hmac := args[0], args[1], args[2]
	ok, err := commitment.VerifyHex(key, move, hmac)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("HMAC %s was not produced by move %q with key %s", hmac, move, key)
	}
	pterm.Fprintln(out, pterm.Success.Sprintfln("HMAC matches move %q", move))
	return nil
}
