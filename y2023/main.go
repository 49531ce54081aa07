// Command y2023 solves Advent of Code 2023 days 1 through 3.
//
// Inputs are read from <inputs>/2023/<day>.input. An optional aoc.hcl in
// the working directory may override the puzzle parameters:
//
//	symbols = "!\"#$%&/()=?*+@-"
//
//	bag {
//	  red   = 12
//	  green = 13
//	  blue  = 14
//	}
package main

import (
	_ "embed"

	"github.com/gearworks/aoc"
	"github.com/gearworks/aoc/calibration"
	"github.com/gearworks/aoc/cubegame"
	"github.com/gearworks/aoc/schematic"
	"github.com/kr/pretty"
)

func main() {
	cfg := config{Symbols: schematic.DefaultSymbols}
	aoc.MustDo(aoc.LoadConfig(&cfg))
	aoc.Run(2023, source, &solver{cfg: cfg})
}

//go:embed main.go
var source []byte

type config struct {
	Symbols string          `hcl:"symbols,optional"`
	Bag     *cubegame.Cubes `hcl:"bag,block"`
}

func (c config) bag() cubegame.Cubes {
	if c.Bag == nil {
		return cubegame.DefaultBag
	}
	return *c.Bag
}

type solver struct {
	*aoc.Puzzle
	cfg config
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return aoc.MustGet(calibration.Sum(s.Lines(), false))
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return aoc.MustGet(calibration.Sum(s.Lines(), true))
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	games := aoc.MustGet(cubegame.ParseGames(s.Lines()))
	s.Debugf("%# v", pretty.Formatter(games))
	return cubegame.SumPossible(games, s.cfg.bag())
}

// want=2286
func (s solver) D2p2() any {
	games := aoc.MustGet(cubegame.ParseGames(s.Lines()))
	return cubegame.SumPower(games)
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	sch := aoc.MustGet(schematic.Parse(s.Lines(), schematic.NewAlphabet(s.cfg.Symbols)))
	s.Debug("schematic", sch.Rows.Hash(), "symbols:", sch.Symbols.Len())
	s.Debugf("%# v", pretty.Formatter(sch.PartNumbers()))
	return sch.PartNumberSum()
}
