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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	AddRecipe(ctx context.Context) error
	QuickAdd(ctx context.Context) error
	ListCatalog(ctx context.Context) error
	ListMine(ctx context.Context) error
	ListInbox(ctx context.Context) error
	ShareRecipe(ctx context.Context) error
	SearchCatalog(ctx context.Context) error
	ListUsers(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("recetario %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, quickadd, (l)ist, mine, inbox, share, search, users, logout, exit")
			} else {
				printlnFn("Available commands: register, login, (l)ist, search, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "add":
			_ = a.AddRecipe(ctx)

		case "quickadd":
			_ = a.QuickAdd(ctx)

		case "l", "list":
			_ = a.ListCatalog(ctx)

		case "mine":
			_ = a.ListMine(ctx)

		case "inbox":
			_ = a.ListInbox(ctx)

		case "share":
			_ = a.ShareRecipe(ctx)

		case "search":
			_ = a.SearchCatalog(ctx)

		case "users":
			_ = a.ListUsers(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
