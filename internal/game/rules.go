package game

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/cards"
)

// Rules are the table's house rules. Money amounts are in cents.
type Rules struct {
	Decks        int
	MaxPlayers   int
	MinBet       int
	MaxBet       int
	BetIncrement int
	Bankroll     int
	HitSoft17    bool
	EvenMoney    bool
}

// DefaultRules returns the house defaults: single deck, $1-$100 table
// in $1 increments, $1000 starting bankroll, dealer stands on soft 17,
// even money offered.
func DefaultRules() Rules {
	return Rules{
		Decks:        1,
		MaxPlayers:   4,
		MinBet:       100,
		MaxBet:       10000,
		BetIncrement: 100,
		Bankroll:     100000,
		HitSoft17:    false,
		EvenMoney:    true,
	}
}

// Validate checks the rules for internal consistency.
func (r Rules) Validate() error {
	if r.Decks < cards.MinDecks || r.Decks > cards.MaxDecks {
		return fmt.Errorf("decks must be [%d..%d], got %d", cards.MinDecks, cards.MaxDecks, r.Decks)
	}
	if r.MaxPlayers < 1 {
		return fmt.Errorf("max players must be at least 1, got %d", r.MaxPlayers)
	}
	if r.BetIncrement <= 0 {
		return fmt.Errorf("bet increment must be positive, got %d", r.BetIncrement)
	}
	if r.MinBet <= 0 || r.MaxBet < r.MinBet {
		return fmt.Errorf("bet range [%d..%d] is invalid", r.MinBet, r.MaxBet)
	}
	if r.MinBet%r.BetIncrement != 0 || r.MaxBet%r.BetIncrement != 0 {
		return fmt.Errorf("bet range [%d..%d] must align to increment %d", r.MinBet, r.MaxBet, r.BetIncrement)
	}
	if r.Bankroll < r.MinBet {
		return fmt.Errorf("bankroll %d cannot cover the minimum bet %d", r.Bankroll, r.MinBet)
	}
	return nil
}

// ValidBet reports whether bet satisfies the table limits, the bet
// increment and the player's bankroll.
func (r Rules) ValidBet(bet, bankroll int) bool {
	max := r.MaxBet
	if bankroll < max {
		max = bankroll
	}
	return bet >= r.MinBet && bet <= max && bet%r.BetIncrement == 0
}

// rulesFile is the HCL schema for a house-rules file. Money amounts are
// written in whole dollars.
type rulesFile struct {
	Table *tableBlock `hcl:"table,block"`
}

type tableBlock struct {
	Decks        *int  `hcl:"decks,optional"`
	MaxPlayers   *int  `hcl:"max_players,optional"`
	MinBet       *int  `hcl:"min_bet,optional"`
	MaxBet       *int  `hcl:"max_bet,optional"`
	BetIncrement *int  `hcl:"bet_increment,optional"`
	Bankroll     *int  `hcl:"bankroll,optional"`
	HitSoft17    *bool `hcl:"hit_soft_17,optional"`
	EvenMoney    *bool `hcl:"even_money,optional"`
}

// LoadRules reads house rules from an HCL file, layered over the
// defaults.
func LoadRules(path string) (Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseRules(data, path)
}

// ParseRules parses house rules from HCL source.
func ParseRules(src []byte, filename string) (Rules, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Rules{}, fmt.Errorf("failed to parse rules: %s", diags.Error())
	}

	var rf rulesFile
	if diags := gohcl.DecodeBody(file.Body, nil, &rf); diags.HasErrors() {
		return Rules{}, fmt.Errorf("failed to decode rules: %s", diags.Error())
	}

	rules := DefaultRules()
	if t := rf.Table; t != nil {
		if t.Decks != nil {
			rules.Decks = *t.Decks
		}
		if t.MaxPlayers != nil {
			rules.MaxPlayers = *t.MaxPlayers
		}
		if t.MinBet != nil {
			rules.MinBet = *t.MinBet * 100
		}
		if t.MaxBet != nil {
			rules.MaxBet = *t.MaxBet * 100
		}
		if t.BetIncrement != nil {
			rules.BetIncrement = *t.BetIncrement * 100
		}
		if t.Bankroll != nil {
			rules.Bankroll = *t.Bankroll * 100
		}
		if t.HitSoft17 != nil {
			rules.HitSoft17 = *t.HitSoft17
		}
		if t.EvenMoney != nil {
			rules.EvenMoney = *t.EvenMoney
		}
	}

	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}
