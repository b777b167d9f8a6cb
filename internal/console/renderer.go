package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/blackjack/internal/cards"
	"github.com/lox/blackjack/internal/game"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#046A38")).
			Padding(0, 1).
			Bold(true)

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	loseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	pushStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	dimStyle  = lipgloss.NewStyle().Faint(true)
	redCard   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Renderer subscribes to the session's event bus and writes a running
// account of the game. It receives read-only snapshots only.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// OnEvent implements game.EventSubscriber.
func (r *Renderer) OnEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, headerStyle.Render(fmt.Sprintf(" Shoe %d — Round %d ", e.Shoe, e.Round)))
		for _, p := range e.Players {
			fmt.Fprintf(r.out, "  %s %s\n", p.Name, dimStyle.Render(dollars(p.Bankroll)))
		}
	case game.UpCardEvent:
		fmt.Fprintf(r.out, "Dealer shows %s\n", renderCard(e.Card))
	case game.HandPlayedEvent:
		label := e.Player.Name
		if e.HandIndex > 0 || e.Hand.Split {
			label = fmt.Sprintf("%s (hand %d)", e.Player.Name, e.HandIndex+1)
		}
		fmt.Fprintf(r.out, "%s: %s\n", label, renderHand(e.Hand.Text))
	case game.InsurancePlacedEvent:
		fmt.Fprintf(r.out, "%s places %s insurance\n", e.Player.Name, dollars(e.Amount))
	case game.InsuranceResultEvent:
		if e.Won {
			fmt.Fprintln(r.out, winStyle.Render(fmt.Sprintf("%s wins %s on insurance", e.Player.Name, dollars(e.Amount))))
		} else {
			fmt.Fprintln(r.out, loseStyle.Render(fmt.Sprintf("%s loses the %s insurance bet", e.Player.Name, dollars(e.Amount))))
		}
	case game.HandResultEvent:
		r.renderResult(e)
	case game.PlayerBrokeEvent:
		fmt.Fprintln(r.out, loseStyle.Render(
			fmt.Sprintf("%s can't cover the %s minimum and leaves the table", e.Player.Name, dollars(e.MinBet))))
	case game.SessionEndEvent:
		fmt.Fprintln(r.out)
		fmt.Fprintln(r.out, headerStyle.Render(" Final results "))
		for _, p := range e.Players {
			fmt.Fprintf(r.out, "  %s [%d hand(s)] [%s]\n", p.Name, p.HandsPlayed, dollars(p.Bankroll))
		}
		fmt.Fprintf(r.out, "  %s [%s]\n", e.Dealer.Name, dollars(e.Dealer.Bankroll))
		fmt.Fprintf(r.out, "  %d round(s) over %d shoe(s)\n", e.Rounds, e.Shoes)
	}
}

func (r *Renderer) renderResult(e game.HandResultEvent) {
	hand := renderHand(e.Hand.Text)
	switch e.Outcome {
	case game.OutcomeBlackjack:
		fmt.Fprintln(r.out, winStyle.Render(fmt.Sprintf("%s wins %s with blackjack! %s", e.Player.Name, dollars(e.Winnings), hand)))
	case game.OutcomeEvenMoney:
		fmt.Fprintln(r.out, winStyle.Render(fmt.Sprintf("%s takes even money for %s", e.Player.Name, dollars(e.Winnings))))
	case game.OutcomeWin:
		fmt.Fprintf(r.out, "Dealer: %s\n", renderHand(e.Dealer.Text))
		fmt.Fprintln(r.out, winStyle.Render(fmt.Sprintf("%s wins %s  %s", e.Player.Name, dollars(e.Winnings), hand)))
	case game.OutcomePush:
		fmt.Fprintf(r.out, "Dealer: %s\n", renderHand(e.Dealer.Text))
		fmt.Fprintln(r.out, pushStyle.Render(fmt.Sprintf("%s pushes  %s", e.Player.Name, hand)))
	case game.OutcomeLose:
		fmt.Fprintf(r.out, "Dealer: %s\n", renderHand(e.Dealer.Text))
		fmt.Fprintln(r.out, loseStyle.Render(fmt.Sprintf("%s loses %s  %s", e.Player.Name, dollars(e.Hand.Bet), hand)))
	}
}

func renderCard(c cards.Card) string {
	if c.Suit == cards.Hearts || c.Suit == cards.Diamonds {
		return redCard.Render(c.String())
	}
	return c.String()
}

// renderHand colorizes the suits inside a hand's text rendering.
func renderHand(text string) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '♥', '♦':
			b.WriteString(redCard.Render(string(r)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
