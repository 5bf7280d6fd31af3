package main

import (
	"encoding/json"
	"fmt"

	"github.com/alecthomas/kong"

	"namematch/names"
	"namematch/similarity"
)

var cli struct {
	Compare CompareCmd `cmd:"" help:"Score how likely two names refer to the same person"`
	Dedupe  DedupeCmd  `cmd:"" help:"Find likely duplicate names within one CSV column"`
	Link    LinkCmd    `cmd:"" help:"Link records across two CSV files by name column"`
}

type CompareCmd struct {
	A   string `arg:"" help:"First value"`
	B   string `arg:"" help:"Second value"`
	Raw bool   `help:"Score as raw strings, without name sanitization"`
}

func (c *CompareCmd) Run() error {
	var score float64
	if c.Raw {
		score = similarity.Score(c.A, c.B)
	} else {
		score = names.Compare(c.A, c.B)
	}

	data, err := json.Marshal(map[string]float64{"score": score})
	fmt.Println(string(data))

	return err
}

type DedupeCmd struct {
	Path      string  `arg:"" name:"path" help:"CSV file" type:"path"`
	Column    string  `arg:"" help:"Name column to deduplicate"`
	Threshold float64 `help:"Minimum score to report" default:"0.8"`
	Limit     int     `help:"Maximum pairs to report, 0 for all" default:"0"`
}

func (d *DedupeCmd) Run() error {
	pairs, err := runDedupe(*d)
	if err != nil {
		return err
	}

	data, err := json.Marshal(pairs)
	fmt.Println(string(data))

	return err
}

type LinkCmd struct {
	LeftPath    string  `arg:"" name:"left" help:"Left CSV file" type:"path"`
	RightPath   string  `arg:"" name:"right" help:"Right CSV file" type:"path"`
	LeftColumn  string  `arg:"" help:"Name column in the left file"`
	RightColumn string  `arg:"" help:"Name column in the right file"`
	Threshold   float64 `help:"Minimum score to report" default:"0.8"`
	Limit       int     `help:"Maximum pairs to report, 0 for all" default:"0"`
}

func (l *LinkCmd) Run() error {
	pairs, err := runLink(*l)
	if err != nil {
		return err
	}

	data, err := json.Marshal(pairs)
	fmt.Println(string(data))

	return err
}

func main() {
	ctx := kong.Parse(&cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
