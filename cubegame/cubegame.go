// Package cubegame scores records of games in which handfuls of coloured
// cubes are drawn from a bag.
package cubegame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gearworks/aoc"
)

// ErrMalformedGame is returned for a record that cannot be parsed.
var ErrMalformedGame = errors.New("malformed game")

// Cubes counts cubes by colour.
type Cubes struct {
	Red   int `hcl:"red"`
	Green int `hcl:"green"`
	Blue  int `hcl:"blue"`
}

// DefaultBag is the bag the games are checked against unless configured.
var DefaultBag = Cubes{Red: 12, Green: 13, Blue: 14}

// Within reports whether no colour of c exceeds bag.
func (c Cubes) Within(bag Cubes) bool {
	return c.Red <= bag.Red && c.Green <= bag.Green && c.Blue <= bag.Blue
}

// Power is the product of the three counts.
func (c Cubes) Power() int {
	return aoc.Product(c.Red, c.Green, c.Blue)
}

// Game is one record: an id and the draws revealed during the game.
type Game struct {
	ID    int
	Draws []Cubes
}

// ParseGame parses a record such as
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedGame, line)
	}
	idStr, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: bad header %q", ErrMalformedGame, head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return Game{}, fmt.Errorf("%w: bad id %q", ErrMalformedGame, idStr)
	}
	g := Game{ID: id}
	for _, draw := range strings.Split(body, ";") {
		c, err := parseDraw(draw)
		if err != nil {
			return Game{}, fmt.Errorf("game %d: %w", id, err)
		}
		g.Draws = append(g.Draws, c)
	}
	return g, nil
}

func parseDraw(draw string) (Cubes, error) {
	var c Cubes
	for _, part := range strings.Split(draw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		nStr, colour, ok := strings.Cut(part, " ")
		if !ok {
			return Cubes{}, fmt.Errorf("%w: bad draw %q", ErrMalformedGame, part)
		}
		n, err := strconv.Atoi(nStr)
		if err != nil || n < 0 {
			return Cubes{}, fmt.Errorf("%w: bad count %q", ErrMalformedGame, nStr)
		}
		switch strings.TrimSpace(colour) {
		case "red":
			c.Red += n
		case "green":
			c.Green += n
		case "blue":
			c.Blue += n
		default:
			return Cubes{}, fmt.Errorf("%w: unknown colour %q", ErrMalformedGame, colour)
		}
	}
	return c, nil
}

// Possible reports whether every draw of g could come from bag.
func (g Game) Possible(bag Cubes) bool {
	for _, d := range g.Draws {
		if !d.Within(bag) {
			return false
		}
	}
	return true
}

// Minimum returns the fewest cubes of each colour that make g possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, d := range g.Draws {
		m.Red = max(m.Red, d.Red)
		m.Green = max(m.Green, d.Green)
		m.Blue = max(m.Blue, d.Blue)
	}
	return m
}

// ParseGames parses one record per line.
func ParseGames(lines []string) ([]Game, error) {
	games := make([]Game, 0, len(lines))
	for _, line := range lines {
		g, err := ParseGame(line)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

// SumPossible returns the sum of the ids of the games possible with bag.
func SumPossible(games []Game, bag Cubes) int {
	var sum int
	for _, g := range games {
		if g.Possible(bag) {
			sum += g.ID
		}
	}
	return sum
}

// SumPower returns the sum of the powers of each game's minimum bag.
func SumPower(games []Game) int {
	var sum int
	for _, g := range games {
		sum += g.Minimum().Power()
	}
	return sum
}
