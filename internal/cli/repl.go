package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Create(ctx context.Context) error
	Login(ctx context.Context) error
	Search(ctx context.Context) error
	Book(ctx context.Context, args []string) error
	Pay(ctx context.Context, args []string) error
	Reservations(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help              — show available commands
//	  - create            — create an account
//	  - login             — authenticate
//	  - exit | quit       — leave the program
//
//	Logged in:
//	  - help              — show available commands
//	  - search            — find itineraries (interactive prompts)
//	  - book [id]         — reserve an itinerary from the last search
//	  - pay [id]          — pay for a reservation
//	  - (r)eservations    — list your reservations
//	  - exit | quit       — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// report their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fb%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: search, book [id], pay [id], (r)eservations, exit")
			} else {
				printlnFn("Available commands: create, login, exit")
			}

		case "create":
			_ = a.Create(ctx)

		case "login":
			_ = a.Login(ctx)

		case "search":
			_ = a.Search(ctx)

		case "book":
			_ = a.Book(ctx, args)

		case "pay":
			_ = a.Pay(ctx, args)

		case "r", "reservations":
			_ = a.Reservations(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
