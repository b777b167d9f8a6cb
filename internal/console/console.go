// Package console is the interactive front end: it answers the engine's
// decision requests from terminal input and renders game events. It
// never mutates engine state.
package console

import (
	"errors"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/game"
)

// Console prompts a human at a terminal. Any of the quit words (q,
// quit, exit) at any prompt raises game.ErrQuit, which the engine
// treats as a cooperative shutdown.
type Console struct {
	rl  *readline.Instance
	out io.Writer
	rng *rand.Rand
}

// New creates a console on the process terminal.
func New(rng *rand.Rand) (*Console, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("failed to init readline: %w", err)
	}
	return &Console{rl: rl, out: rl.Stdout(), rng: rng}, nil
}

// Close releases the terminal.
func (c *Console) Close() error {
	return c.rl.Close()
}

// Out returns the writer prompts and renders go to.
func (c *Console) Out() io.Writer {
	return c.out
}

func (c *Console) ask(prompt string) (string, error) {
	c.rl.SetPrompt(prompt)
	line, err := c.rl.Readline()
	if err != nil {
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return "", game.ErrQuit
		}
		return "", err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	switch answer {
	case "q", "quit", "exit":
		return "", game.ErrQuit
	}
	return answer, nil
}

func (c *Console) askYesNo(prompt string, def bool) (bool, error) {
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return false, err
		}
		switch answer {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please answer y or n.")
	}
}

func (c *Console) askInt(prompt string, min, max int) (int, error) {
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		if err != nil || n < min || n > max {
			fmt.Fprintf(c.out, "Please enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// NumDecks asks how many decks to play with.
func (c *Console) NumDecks() (int, error) {
	return c.askInt(fmt.Sprintf("How many decks? (%d-%d) ", cards.MinDecks, cards.MaxDecks),
		cards.MinDecks, cards.MaxDecks)
}

// PlayerNames asks for the player count and a name per seat. Names are
// deduplicated by suffixing repeats.
func (c *Console) PlayerNames(maxPlayers int) ([]string, error) {
	count, err := c.askInt(fmt.Sprintf("How many players? (1-%d) ", maxPlayers), 1, maxPlayers)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, count)
	seen := map[string]bool{}
	for i := 0; i < count; i++ {
		answer, err := c.ask(fmt.Sprintf("Player %d name: ", i+1))
		if err != nil {
			return nil, err
		}
		name := strings.TrimSpace(answer)
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		if len(name) > 20 {
			name = name[:20]
		}
		for seen[name] {
			name += "'"
		}
		seen[name] = true
		names = append(names, name)
	}
	return names, nil
}

// BetSizes implements game.Prompter.
func (c *Console) BetSizes(players []*game.Player, rules game.Rules) error {
	for _, p := range players {
		max := rules.MaxBet
		if p.Bankroll() < max {
			max = p.Bankroll()
		}
		for {
			prompt := fmt.Sprintf("%s, your bet? (%s-%s, steps of %s) ",
				p.Name(), dollars(rules.MinBet), dollars(max), dollars(rules.BetIncrement))
			answer, err := c.ask(prompt)
			if err != nil {
				return err
			}
			bet, err := parseDollars(answer)
			if err != nil || !rules.ValidBet(bet, p.Bankroll()) {
				fmt.Fprintln(c.out, "That bet doesn't work here; try again.")
				continue
			}
			p.SetBet(bet)
			break
		}
	}
	return nil
}

// Move implements game.Prompter.
func (c *Console) Move(upCard cards.Card, p *game.Player, h *game.Hand, valid []game.Move) (game.Move, error) {
	fmt.Fprintf(c.out, "Dealer shows %s\n", renderCard(upCard))
	fmt.Fprintf(c.out, "%s: %s\n", p.Name(), renderHand(h.String()))

	keys := []string{"[h]it", "s[t]and"}
	for _, m := range valid {
		switch m {
		case game.MoveDouble:
			keys = append(keys, "[d]ouble")
		case game.MoveSplit:
			keys = append(keys, "s[p]lit")
		}
	}
	prompt := strings.Join(keys, " ") + "? "

	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		switch answer {
		case "h", "hit":
			return game.MoveHit, nil
		case "t", "s", "stand":
			return game.MoveStand, nil
		case "d", "double":
			return game.MoveDouble, nil
		case "p", "split":
			return game.MoveSplit, nil
		}
		fmt.Fprintln(c.out, "Didn't catch that; try again.")
	}
}

// Insurance implements game.Prompter.
func (c *Console) Insurance(p *game.Player, h *game.Hand, evenMoneyOffered bool) (game.InsuranceChoice, error) {
	prompt := fmt.Sprintf("%s, insurance? [y]es [n]o ", p.Name())
	if evenMoneyOffered {
		prompt = fmt.Sprintf("%s, you have blackjack! [e]ven money [y] insurance [n]o ", p.Name())
	}
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		switch answer {
		case "y", "yes":
			return game.Insure, nil
		case "e", "even":
			if evenMoneyOffered {
				return game.EvenMoney, nil
			}
		case "n", "no", "":
			return game.Decline, nil
		}
		fmt.Fprintln(c.out, "Didn't catch that; try again.")
	}
}

// CutPoint implements game.Prompter. An empty answer picks a random cut.
func (c *Console) CutPoint(cutter *game.Player, shoeSize int) (int, error) {
	prompt := fmt.Sprintf("%s, cut the shoe (1-%d, enter for random) ", cutter.Name(), shoeSize-1)
	for {
		answer, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}
		if answer == "" {
			return 1 + c.rng.IntN(shoeSize-1), nil
		}
		at, err := strconv.Atoi(answer)
		if err != nil || at < 1 || at >= shoeSize {
			fmt.Fprintf(c.out, "The cut must land between two cards (1-%d).\n", shoeSize-1)
			continue
		}
		return at, nil
	}
}

// PickCard asks for an explicit card by code, for scripted deals.
func (c *Console) PickCard() (cards.Card, error) {
	for {
		answer, err := c.ask("Card? (e.g. AS, TH, 9D) ")
		if err != nil {
			return cards.Card{}, err
		}
		card, err := cards.Parse(strings.ToUpper(answer))
		if err != nil {
			fmt.Fprintln(c.out, "That's not a card; rank then suit, like AS or 7H.")
			continue
		}
		return card, nil
	}
}

// ChangeBets implements game.Prompter.
func (c *Console) ChangeBets() (bool, error) {
	return c.askYesNo("Change bets? [y/N] ", false)
}

// AnotherShoe implements game.Prompter.
func (c *Console) AnotherShoe(shoesPlayed int) (bool, error) {
	return c.askYesNo(fmt.Sprintf("That's %d shoe(s) done. Another? [Y/n] ", shoesPlayed), true)
}

func dollars(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	if cents%100 == 0 {
		return fmt.Sprintf("%s$%d", sign, cents/100)
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// parseDollars reads "10", "$10" or "10.50" as cents.
func parseDollars(s string) (int, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if whole, frac, ok := strings.Cut(s, "."); ok {
		if len(frac) != 2 {
			return 0, fmt.Errorf("invalid amount %q", s)
		}
		w, err := strconv.Atoi(whole)
		if err != nil {
			return 0, err
		}
		f, err := strconv.Atoi(frac)
		if err != nil {
			return 0, err
		}
		return w*100 + f, nil
	}
	w, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return w * 100, nil
}
