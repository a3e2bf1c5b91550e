package main

// repl.go — the console view layer. Every command maps onto one session
// operation; errors are printed inline and never kill the loop.

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alejandrodnm/stellarcast/internal/adapters/notify"
	"github.com/alejandrodnm/stellarcast/internal/domain"
	"github.com/alejandrodnm/stellarcast/internal/session"
)

const banner = `stellarcast — simulated Stellar prediction markets
type "help" for commands, "connect" to get a funded demo wallet`

const helpText = `  connect                         connect the demo wallet
  disconnect                      drop the wallet connection
  balance                         show spendable XLM
  markets [category] [query...]   list markets (category: all|crypto|sports|tech|politics|entertainment)
  show <id>                       show one market in full
  predict <id> <yes|no> <amount>  place a prediction
  create                          create a market (interactive)
  portfolio                       show positions and totals
  stats                           venue summary
  quit                            exit`

type repl struct {
	sess    *session.Session
	console *notify.Console
	lines   <-chan string
	out     io.Writer
}

// runREPL drives the interactive session until quit, EOF, or ctx cancel.
func runREPL(ctx context.Context, sess *session.Session, console *notify.Console, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			lines <- sc.Text()
		}
	}()

	r := &repl{sess: sess, console: console, lines: lines, out: out}

	fmt.Fprintln(out, banner)
	r.printStats(ctx)

	for {
		fmt.Fprint(out, "> ")
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if r.dispatch(ctx, line) {
				return nil
			}
		}
	}
}

// dispatch runs one command line; returns true on quit.
func (r *repl) dispatch(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(r.out, helpText)
	case "connect":
		r.connect(ctx)
	case "disconnect":
		r.sess.Disconnect()
		fmt.Fprintln(r.out, "wallet disconnected")
	case "balance":
		r.balance()
	case "markets":
		r.markets(ctx, args)
	case "show":
		r.show(ctx, args)
	case "predict":
		r.predict(ctx, args)
	case "create":
		r.create(ctx)
	case "portfolio":
		r.portfolio(ctx)
	case "stats":
		r.printStats(ctx)
	default:
		fmt.Fprintf(r.out, "unknown command %q — type \"help\"\n", cmd)
	}
	return false
}

func (r *repl) connect(ctx context.Context) {
	acc, err := r.sess.ConnectWallet(ctx)
	if err != nil {
		r.console.PrintError(err)
		return
	}
	r.console.PrintAccount(acc)
}

func (r *repl) balance() {
	bal, err := r.sess.Balance()
	if err != nil {
		r.console.PrintError(err)
		return
	}
	fmt.Fprintf(r.out, "balance: %.2f XLM\n", bal)
}

func (r *repl) markets(ctx context.Context, args []string) {
	category, query := parseListingArgs(args)
	markets, err := r.sess.Markets(ctx, category, query)
	if err != nil {
		r.console.PrintError(err)
		return
	}
	r.console.PrintMarkets(markets)
}

func (r *repl) show(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "usage: show <id>")
		return
	}
	markets, err := r.sess.Markets(ctx, domain.CategoryAll, "")
	if err != nil {
		r.console.PrintError(err)
		return
	}
	for _, m := range markets {
		if m.ID == args[0] {
			r.console.PrintMarketDetail(m)
			return
		}
	}
	r.console.PrintError(domain.ErrMarketNotFound)
}

func (r *repl) predict(ctx context.Context, args []string) {
	marketID, side, amount, err := parsePredictArgs(args)
	if err != nil {
		fmt.Fprintf(r.out, "%v\nusage: predict <id> <yes|no> <amount>\n", err)
		return
	}

	pos, err := r.sess.PlacePrediction(ctx, marketID, side, amount)
	if err != nil {
		r.console.PrintError(err)
		return
	}

	markets, err := r.sess.Markets(ctx, domain.CategoryAll, "")
	if err != nil {
		r.console.PrintError(err)
		return
	}
	for _, m := range markets {
		if m.ID == marketID {
			r.console.PrintPosition(pos, m)
			return
		}
	}
}

func (r *repl) create(ctx context.Context) {
	question, ok := r.prompt(ctx, "question: ")
	if !ok {
		return
	}
	description, ok := r.prompt(ctx, "description: ")
	if !ok {
		return
	}
	category, ok := r.prompt(ctx, "category (crypto|sports|tech|politics|entertainment): ")
	if !ok {
		return
	}
	daysStr, ok := r.prompt(ctx, "days until resolution: ")
	if !ok {
		return
	}
	days, err := strconv.Atoi(strings.TrimSpace(daysStr))
	if err != nil || days <= 0 {
		fmt.Fprintln(r.out, "days must be a positive integer")
		return
	}
	tagsStr, ok := r.prompt(ctx, "tags (comma-separated, optional): ")
	if !ok {
		return
	}

	draft := domain.MarketDraft{
		Question:       strings.TrimSpace(question),
		Description:    strings.TrimSpace(description),
		Category:       domain.Category(strings.ToLower(strings.TrimSpace(category))),
		ResolutionDate: time.Now().AddDate(0, 0, days),
		Tags:           parseTags(tagsStr),
	}

	m, err := r.sess.CreateMarket(ctx, draft)
	if err != nil {
		r.console.PrintError(err)
		return
	}
	fmt.Fprintf(r.out, "market %s created\n", m.ID)
	r.console.PrintMarketDetail(m)
}

func (r *repl) portfolio(ctx context.Context) {
	positions, summary, err := r.sess.Portfolio(ctx)
	if err != nil {
		r.console.PrintError(err)
		return
	}
	r.console.PrintPortfolio(positions, summary)
}

func (r *repl) printStats(ctx context.Context) {
	st, err := r.sess.Stats(ctx)
	if err != nil {
		r.console.PrintError(err)
		return
	}
	r.console.PrintStats(notify.StatsInput{
		Markets:     st.Markets,
		TotalVolume: st.TotalVolume,
		Positions:   st.Positions,
	})
}

// prompt reads one line of input; ok is false on EOF or cancel.
func (r *repl) prompt(ctx context.Context, label string) (string, bool) {
	fmt.Fprint(r.out, label)
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-r.lines:
		return line, ok
	}
}

// parseListingArgs splits "markets [category] [query...]". A first arg
// that is not a category (or "all") is treated as part of the query.
func parseListingArgs(args []string) (domain.Category, string) {
	if len(args) == 0 {
		return domain.CategoryAll, ""
	}
	first := domain.Category(strings.ToLower(args[0]))
	if first == domain.CategoryAll || first.Valid() {
		return first, strings.Join(args[1:], " ")
	}
	return domain.CategoryAll, strings.Join(args, " ")
}

// parsePredictArgs parses "predict <id> <yes|no> <amount>".
func parsePredictArgs(args []string) (string, domain.Side, float64, error) {
	if len(args) != 3 {
		return "", "", 0, fmt.Errorf("predict takes exactly 3 arguments")
	}
	side, err := domain.ParseSide(args[1])
	if err != nil {
		return "", "", 0, err
	}
	amount, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return "", "", 0, fmt.Errorf("bad amount %q", args[2])
	}
	return args[0], side, amount, nil
}

// parseTags splits a comma-separated tag list, dropping blanks.
func parseTags(s string) []string {
	var tags []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
