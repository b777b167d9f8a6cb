package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/game"
)

func TestRendererRoundStart(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.OnEvent(game.NewRoundStartEvent("id", 1, 3, []game.PlayerView{
		{Name: "Alice", Bankroll: 100000},
	}))

	assert.Contains(t, buf.String(), "Shoe 1 — Round 3")
	assert.Contains(t, buf.String(), "Alice")
	assert.Contains(t, buf.String(), "$1000")
}

func TestRendererHandResults(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	alice := game.PlayerView{Name: "Alice"}

	r.OnEvent(game.NewHandResultEvent(alice, game.HandView{Text: "[A♠|K♦]: 11 or 21 BLACKJACK"}, game.HandView{}, game.OutcomeBlackjack, 2500))
	assert.Contains(t, buf.String(), "Alice wins $25 with blackjack!")

	buf.Reset()
	r.OnEvent(game.NewHandResultEvent(alice, game.HandView{Text: "[T♠|T♥]: 20"}, game.HandView{Text: "[T♦|9♣]: 19"}, game.OutcomeWin, 2000))
	assert.Contains(t, buf.String(), "Dealer: [T♦|9♣]: 19")
	assert.Contains(t, buf.String(), "Alice wins $20")

	buf.Reset()
	r.OnEvent(game.NewHandResultEvent(alice, game.HandView{Text: "[T♠|T♥]: 20"}, game.HandView{Text: "[T♦|T♣]: 20"}, game.OutcomePush, 1000))
	assert.Contains(t, buf.String(), "Alice pushes")

	buf.Reset()
	r.OnEvent(game.NewHandResultEvent(alice, game.HandView{Text: "[T♠|8♥]: 18", Bet: 1000}, game.HandView{Text: "[T♦|9♣]: 19"}, game.OutcomeLose, 0))
	assert.Contains(t, buf.String(), "Alice loses $10")
}

func TestRendererInsuranceAndBroke(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	alice := game.PlayerView{Name: "Alice"}

	r.OnEvent(game.NewUpCardEvent(cards.MustCard(cards.Ace, cards.Spades)))
	assert.Contains(t, buf.String(), "Dealer shows A♠")

	buf.Reset()
	r.OnEvent(game.NewInsurancePlacedEvent(alice, 500))
	assert.Contains(t, buf.String(), "Alice places $5 insurance")

	buf.Reset()
	r.OnEvent(game.NewInsuranceResultEvent(alice, true, 1500))
	assert.Contains(t, buf.String(), "Alice wins $15 on insurance")

	buf.Reset()
	r.OnEvent(game.NewPlayerBrokeEvent(alice, 100))
	assert.Contains(t, buf.String(), "leaves the table")
}

func TestRendererSessionEnd(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := NewRenderer(&buf)
	r.OnEvent(game.NewSessionEndEvent(
		[]game.PlayerView{{Name: "Alice", Bankroll: 95000, HandsPlayed: 12}},
		game.PlayerView{Name: "Dealer", Bankroll: 5000, IsDealer: true},
		12, 2))

	out := buf.String()
	assert.Contains(t, out, "Final results")
	assert.Contains(t, out, "Alice [12 hand(s)] [$950]")
	assert.Contains(t, out, "Dealer [$50]")
	assert.Contains(t, out, "12 round(s) over 2 shoe(s)")
}
