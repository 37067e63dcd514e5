// Package cli implements the interactive auth client. It talks to a running
// auth server over HTTP and drives a small read-eval-print loop with
// register, login and whoami commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/JoshuaSkootsky/roll-own-auth/internal/client/api"
	"github.com/JoshuaSkootsky/roll-own-auth/internal/client/config"
)

type App struct {
	config   *config.Config
	client   *api.Client
	reader   *bufio.Reader
	out      io.Writer
	token    string
	userName string
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		client: api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) isLoggedIn() bool {
	return a.token != ""
}

func (a *App) prompt() string {
	if a.userName != "" {
		return fmt.Sprintf("auth (%s)> ", a.userName)
	}
	return "auth> "
}

// Run starts the REPL. It exits on EOF, "exit"/"quit", or context
// cancellation between commands.
func (a *App) Run(ctx context.Context) {

	fmt.Fprintln(a.out, "Welcome to the auth CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		fmt.Fprint(a.out, a.prompt())
		if !scanner.Scan() {
			return
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, token, logout, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: register, login, exit")
			}
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "whoami":
			a.whoami(ctx)
		case "token":
			a.printToken()
		case "logout":
			a.token = ""
			a.userName = ""
			fmt.Fprintln(a.out, "Logged out.")
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintf(a.out, "Unknown command: %s\n", parts[0])
		}
	}
}

func (a *App) readCredentials() (string, string, error) {
	userName, err := GetSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return "", "", err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		return "", "", err
	}

	return userName, string(password), nil
}

func (a *App) register(ctx context.Context) {
	userName, password, err := a.readCredentials()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	result, err := a.client.Register(ctx, userName, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintln(a.out, result.Message)
}

func (a *App) login(ctx context.Context) {
	userName, password, err := a.readCredentials()
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	result, err := a.client.Login(ctx, userName, password)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintln(a.out, result.Message)

	if result.Success {
		a.token = result.Token
		a.userName = userName
	}
}

func (a *App) whoami(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	identity, err := a.client.Me(ctx, a.token)
	if err != nil {
		fmt.Fprintln(a.out, err.Error())
		return
	}

	fmt.Fprintf(a.out, "user_id=%s username=%s\n", identity.UserID, identity.Username)
}

func (a *App) printToken() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintln(a.out, a.token)
}
