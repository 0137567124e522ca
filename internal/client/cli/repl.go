package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	s := a.user.Username
	if remaining := a.session.FormatTimeRemaining(context.Background()); remaining != "" {
		s = s + ", " + remaining
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the REPL until EOF or an exit command.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to VoiceProof CLI — audio deepfake detection (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("vproof %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		if quit := a.dispatch(ctx, scanner.Text()); quit {
			fmt.Println("Bye!")
			return
		}
	}
}

// dispatch parses one REPL line and executes its command. Returns true when
// the user asked to exit.
func (a *App) dispatch(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return false
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Println("Available commands: analyze <file>, history, stats, status, whoami, logout, exit")
		} else {
			fmt.Println("Available commands: login, register, exit")
		}

	case "login":
		_ = a.Login(ctx)
	case "register":
		_ = a.Register(ctx)
	case "logout":
		_ = a.Logout(ctx)

	case "analyze":
		if len(args) == 0 {
			fmt.Println("Usage: analyze <file>")
			return false
		}
		_ = a.Analyze(ctx, strings.Join(args, " "))
	case "history":
		_ = a.History(ctx)
	case "stats":
		_ = a.Stats(ctx)
	case "status":
		_ = a.Status(ctx)
	case "whoami":
		_ = a.WhoAmI(ctx)

	case "exit", "quit":
		return true

	default:
		fmt.Println("Unknown command:", cmd)
	}

	return false
}
