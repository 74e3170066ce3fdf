package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/simbase"
	"github.com/npillmayer/simbase/container/ordlist"
	"github.com/npillmayer/simbase/container/ordmap"
	"github.com/npillmayer/simbase/internal/cmdscan"
)

// Intp is our interpreter object. It operates on a single map.
type Intp struct {
	m    *ordmap.Map
	scan *cmdscan.Scanner
	repl *readline.Instance
}

// NewIntp creates an interpreter with an empty map.
func NewIntp() (*Intp, error) {
	scan, err := cmdscan.New()
	if err != nil {
		return nil, fmt.Errorf("cannot create command scanner: %v", err)
	}
	return &Intp{
		m:    ordmap.New(),
		scan: scan,
	}, nil
}

// result is the outcome of evaluating a command: a line of text and/or a tree
// to display.
type result struct {
	text string
	tree pterm.LeveledList
	quit bool
}

type command struct {
	args int // number of arguments
	help string
	run  func(intp *Intp, args []simbase.Item) (result, error)
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"add":   {2, "add K V   insert a new entry", (*Intp).add},
		"del":   {1, "del K     delete an entry", (*Intp).del},
		"get":   {1, "get K     show the value for K", (*Intp).get},
		"set":   {2, "set K V   replace the value for K", (*Intp).set},
		"has":   {1, "has K     check for key K", (*Intp).has},
		"list":  {0, "list      show all entries in key order", (*Intp).list},
		"tree":  {0, "tree      show the red-black tree", (*Intp).tree},
		"count": {0, "count     show the number of entries", (*Intp).count},
		"clear": {0, "clear     remove all entries", (*Intp).clear},
		"check": {0, "check     verify the red-black properties", (*Intp).check},
		"min":   {0, "min       show the smallest key", (*Intp).min},
		"max":   {0, "max       show the largest key", (*Intp).max},
		"help":  {0, "help      show this text", (*Intp).help},
		"quit":  {0, "quit      leave the REPL", (*Intp).quit},
	}
}

// Eval evaluates a command, given on a line by itself.
//
func (intp *Intp) Eval(line string) (result, error) {
	tokens, err := intp.scan.Tokens(line)
	if err != nil {
		return result{}, err
	}
	if len(tokens) == 0 { // blank or comment
		return result{}, nil
	}
	if tokens[0].Kind != cmdscan.Keyword {
		return result{}, fmt.Errorf("unknown command %q, try 'help'", tokens[0].Lexeme)
	}
	name := tokens[0].Value.(string)
	cmd := commands[name]
	args := tokens[1:]
	if len(args) != cmd.args {
		return result{}, fmt.Errorf("%s expects %d argument(s), has %d", name, cmd.args, len(args))
	}
	items := make([]simbase.Item, len(args))
	for i, arg := range args {
		items[i] = itemFrom(arg)
	}
	tracer().Debugf("evaluating %s %v", name, items)
	return cmd.run(intp, items)
}

// itemFrom converts a token into an item: integers become simbase.Int, all
// other tokens become simbase.String.
func itemFrom(tok cmdscan.Token) simbase.Item {
	if tok.Kind == cmdscan.Int {
		return simbase.Int(tok.Value.(int64))
	}
	return simbase.String(tok.Value.(string))
}

func str(item simbase.Item) string {
	return simbase.ItemString(item)
}

// --- Commands --------------------------------------------------------------

func (intp *Intp) add(args []simbase.Item) (result, error) {
	if !intp.m.Add(args[0], args[1]) {
		return result{}, fmt.Errorf("key %s already present", str(args[0]))
	}
	return result{text: fmt.Sprintf("added %s = %s", str(args[0]), str(args[1]))}, nil
}

func (intp *Intp) del(args []simbase.Item) (result, error) {
	if !intp.m.Delete(args[0]) {
		return result{}, fmt.Errorf("no entry for key %s", str(args[0]))
	}
	return result{text: fmt.Sprintf("deleted %s", str(args[0]))}, nil
}

func (intp *Intp) get(args []simbase.Item) (result, error) {
	v := intp.m.Value(args[0])
	if v == nil {
		return result{}, fmt.Errorf("no entry for key %s", str(args[0]))
	}
	return result{text: str(v)}, nil
}

func (intp *Intp) set(args []simbase.Item) (result, error) {
	old := intp.m.ChangeValue(args[0], args[1])
	if old == nil {
		return result{}, fmt.Errorf("no entry for key %s", str(args[0]))
	}
	return result{text: fmt.Sprintf("%s: %s → %s", str(args[0]), str(old), str(args[1]))}, nil
}

func (intp *Intp) has(args []simbase.Item) (result, error) {
	return result{text: fmt.Sprintf("%v", intp.m.Contains(args[0]))}, nil
}

func (intp *Intp) list(args []simbase.Item) (result, error) {
	keys, values := ordlist.New(), ordlist.New()
	defer keys.RemoveAll()
	defer values.RemoveAll()
	intp.m.SortedList(keys, values)
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	for k, v := keys.First(), values.First(); k != nil; k, v = keys.Next(), values.Next() {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(str(k) + ":" + str(v))
	}
	b.WriteString(" }")
	return result{text: b.String()}, nil
}

func (intp *Intp) tree(args []simbase.Item) (result, error) {
	if intp.m.Len() == 0 {
		return result{text: "empty tree"}, nil
	}
	return result{tree: leveledTree(intp.m)}, nil
}

// leveledTree converts the shape of m into a pterm leveled list, which pterm
// can render as a tree.
func leveledTree(m *ordmap.Map) pterm.LeveledList {
	var ll pterm.LeveledList
	m.Walk(func(info ordmap.NodeInfo) bool {
		side := ""
		switch info.Side {
		case ordmap.Left:
			side = "L "
		case ordmap.Right:
			side = "R "
		}
		ll = append(ll, pterm.LeveledListItem{
			Level: info.Depth,
			Text:  fmt.Sprintf("%s%s (%s) = %s", side, str(info.Key), info.Color, str(info.Value)),
		})
		return true
	})
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

func (intp *Intp) count(args []simbase.Item) (result, error) {
	return result{text: fmt.Sprintf("%d", intp.m.Len())}, nil
}

func (intp *Intp) clear(args []simbase.Item) (result, error) {
	intp.m.Clear()
	return result{text: "cleared"}, nil
}

func (intp *Intp) check(args []simbase.Item) (result, error) {
	if err := intp.m.Verify(); err != nil {
		return result{}, err
	}
	return result{text: "ok"}, nil
}

func (intp *Intp) min(args []simbase.Item) (result, error) {
	if intp.m.Len() == 0 {
		return result{}, fmt.Errorf("map is empty")
	}
	return result{text: str(intp.m.Min())}, nil
}

func (intp *Intp) max(args []simbase.Item) (result, error) {
	if intp.m.Len() == 0 {
		return result{}, fmt.Errorf("map is empty")
	}
	return result{text: str(intp.m.Max())}, nil
}

func (intp *Intp) help(args []simbase.Item) (result, error) {
	var lines []string
	for _, kw := range cmdscan.Keywords {
		lines = append(lines, commands[kw].help)
	}
	return result{text: strings.Join(lines, "\n")}, nil
}

func (intp *Intp) quit(args []simbase.Item) (result, error) {
	return result{quit: true}, nil
}
