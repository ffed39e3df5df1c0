// Package commentary produces the one-line remark shown on the game-over
// screen. A remote text model is asked first; any failure falls back to a
// canned phrase picked from the score's tier.
package commentary

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Tier boundaries.
const (
	RookieBelow  = 500
	SkilledBelow = 1500
)

const persona = "You are a sarcastic, witty arcade announcer. Reply with exactly one short sentence, no quotes, no emoji."

var fallbacks = [...][4]string{
	{
		"That's it? A cat walking on the keyboard would have gone further.",
		"Were you polishing the floor down there?",
		"It was over before it even started.",
		"Maybe splash some water on your face and try again.",
	},
	{
		"Getting somewhere, but it still lacks style.",
		"Decent hands, slow reflexes.",
		"Keep at it, the record is within reach.",
		"Don't stop now, you're warming up.",
	},
	{
		"Unreal. I bow before you.",
		"Are you even human?",
		"That wasn't just skill, that was art.",
		"All hail the god of the dash!",
	},
}

// Tier returns 0, 1 or 2 for rookie, skilled and expert scores.
func Tier(score int) int {
	switch {
	case score < RookieBelow:
		return 0
	case score < SkilledBelow:
		return 1
	default:
		return 2
	}
}

// Generator produces text for a system instruction and a prompt.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Commentator turns a finished run into a remark. It never fails.
type Commentator struct {
	gen    Generator
	logger *log.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewCommentator creates a commentator. A nil generator always uses the
// fallback; a nil rng is seeded from the clock; a nil logger discards.
func NewCommentator(gen Generator, logger *log.Logger, rng *rand.Rand) *Commentator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Commentator{gen: gen, logger: logger, rng: rng}
}

// Comment returns a remark for the run, from the generator when possible.
func (c *Commentator) Comment(ctx context.Context, score int, reason string) string {
	if c.gen == nil {
		return c.Fallback(score)
	}

	text, err := c.gen.Generate(ctx, persona, Prompt(score, reason))
	if err != nil {
		if errors.Is(err, ErrNoAPIKey) {
			c.logger.Debug("commentary disabled, using fallback")
		} else {
			c.logger.Warn("commentary request failed, using fallback", "score", score, "err", err)
		}
		return c.Fallback(score)
	}
	return text
}

// Fallback returns a canned phrase from the score's tier.
func (c *Commentator) Fallback(score int) string {
	phrases := fallbacks[Tier(score)]
	c.mu.Lock()
	i := c.rng.Intn(len(phrases))
	c.mu.Unlock()
	return phrases[i]
}

// Prompt builds the user message for a run.
func Prompt(score int, reason string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The player's run in the Pixel Dash side-scroller just ended.\n")
	fmt.Fprintf(&b, "Score: %d (distance).\n", score)
	if reason != "" {
		fmt.Fprintf(&b, "Cause of death: %s.\n", reason)
	}
	fmt.Fprintf(&b, "Judge by score:\n")
	fmt.Fprintf(&b, "- below %d: a rookie, tease them.\n", RookieBelow)
	fmt.Fprintf(&b, "- %d to %d: encourage them but point out what's missing.\n", RookieBelow, SkilledBelow)
	fmt.Fprintf(&b, "- %d and above: praise them with respect.\n", SkilledBelow)
	return b.String()
}
