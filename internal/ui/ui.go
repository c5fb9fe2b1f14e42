// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the Draca language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/michaelmacinnis/draca/internal/common/keyword"
	"github.com/michaelmacinnis/draca/internal/interface/cell"
	"github.com/michaelmacinnis/draca/internal/interface/literal"
	"github.com/michaelmacinnis/draca/internal/interface/scope"
	"github.com/michaelmacinnis/draca/internal/reader"
	"github.com/michaelmacinnis/draca/internal/system/cache"
	"github.com/michaelmacinnis/draca/internal/system/history"
	"github.com/peterh/liner"
)

// Evaluator is the interface for things that want to process parsed forms.
type Evaluator interface {
	Evaluate(c cell.T) (cell.T, error)
	Scope() scope.T
}

//nolint:gochecknoglobals
var (
	active *liner.State
	mu     sync.Mutex
)

// Exit restores the terminal and saves history, if the REPL is running,
// before exiting with code.
func Exit(code int) {
	shutdown()
	os.Exit(code)
}

// Run launches the REPL which sends forms to the Evaluator e. It returns
// when the user presses ^D.
func Run(e Evaluator, version string) error {
	cli := liner.NewLiner()

	mu.Lock()
	active = cli
	mu.Unlock()

	defer shutdown()

	cli.SetCtrlCAborts(true)

	if err := history.Load(cli.ReadHistory); err != nil {
		println(err.Error())
	}

	cache.Populate("")

	words := Words(e.Scope())

	cli.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return complete(words, line, pos)
	})

	fmt.Printf("Draca REPL %s.\n", version)
	fmt.Println("To exit, type `(std::sys::exit)` or press `^D`.")

	r := reader.New("repl")

	for {
		prompt := `\> `
		if r.Pending() {
			prompt = `.. `
		}

		line, err := cli.Prompt(prompt)

		switch {
		case err == nil:
		case errors.Is(err, liner.ErrPromptAborted):
			fmt.Println("^C")
			r.Reset()

			continue
		case errors.Is(err, io.EOF):
			fmt.Println("^D")
			return nil
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		forms, err := r.Scan(line)
		if err != nil {
			report(err)
			continue
		}

		for _, c := range forms {
			v, err := e.Evaluate(c)
			if err != nil {
				report(err)
				break
			}

			fmt.Println(literal.String(v))
		}

		if len(forms) > 0 {
			words = Words(e.Scope())
		}
	}
}

// Words returns the special forms and every name bound in s, both
// qualified and short, for tab completion.
func Words(s scope.T) []string {
	seen := map[string]bool{}

	for _, k := range keyword.All() {
		seen[k] = true
	}

	for _, i := range s.Bindings() {
		seen[i.String()] = true
		seen[i.Target] = true
	}

	words := make([]string, 0, len(seen))
	for w := range seen {
		words = append(words, w)
	}

	sort.Strings(words)

	return words
}

func shutdown() {
	mu.Lock()
	defer mu.Unlock()

	if active == nil {
		return
	}

	if err := history.Save(active.WriteHistory); err != nil {
		println(err.Error())
	}

	_ = active.Close()
	active = nil
}

// The word being completed starts after the last space, quote or paren.
func complete(words []string, line string, pos int) (string, []string, string) {
	h := line[:pos]
	t := line[pos:]

	start := strings.LastIndexAny(h, " \t'()") + 1
	prefix := h[start:]

	// Inside a string, complete file names.
	if strings.HasPrefix(prefix, `"`) {
		dir, _ := filepath.Split(prefix[1:])
		words = cache.Sources(dir)
		prefix = prefix[1:]
		start++
	}

	var cs []string

	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			cs = append(cs, w)
		}
	}

	return h[:start], cs, t
}

func report(err error) {
	fmt.Fprintln(os.Stderr, "==> Error: "+err.Error())
}
