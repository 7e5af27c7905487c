package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/mental-rps/domain/commitment"
	"github.com/luca-patrignani/mental-rps/domain/rps"
	"github.com/luca-patrignani/mental-rps/ledger"
)

func commitmentBox(round int, c commitment.Commitment) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	title := pterm.LightYellow("|ROUND " + strconv.Itoa(round) + "|")
	return pbox.WithTitle(title).WithTitleTopCenter().Sprint("HMAC: " + string(c))
}

func menu(moves rps.MoveSet) string {
	var b strings.Builder
	b.WriteString("Available moves:\n")
	for i, name := range moves.Names() {
		b.WriteString(strconv.Itoa(i+1) + " - " + name + "\n")
	}
	b.WriteString("0 - exit\n")
	b.WriteString("? - help")
	return b.String()
}

// rulesTable renders the relation from the player's side.
func rulesTable(r *rps.Relation) (string, error) {
	return pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(pterm.TableData(r.Table())).Srender()
}

func outcomeText(o rps.Outcome) string {
	switch o {
	case rps.Win:
		return pterm.LightGreen("You win!")
	case rps.Lose:
		return pterm.LightRed("You lose!")
	default:
		return pterm.LightYellow("Draw!")
	}
}

// resultPanel shows both moves, the outcome from the player's side and the
// disclosure needed to check the commitment.
func resultPanel(res rps.RoundResult, score ledger.Score) string {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := pterm.Sprintfln("Your move: %s", pterm.LightCyan(res.OpponentMove)) +
		pterm.Sprintfln("Computer move: %s", pterm.LightCyan(res.HouseMove)) +
		pterm.Sprintfln("%s", outcomeText(res.OpponentOutcome())) +
		pterm.Sprintfln("HMAC key: %s", res.Key) +
		pterm.Sprintfln("HMAC: %s", res.Commitment) +
		pterm.Sprintf("Score: %d won, %d lost, %d drawn", score.Wins, score.Losses, score.Draws)
	return pbox.WithTitle(pterm.LightGreen("|RESULT|")).WithTitleTopCenter().Sprint(body)
}
