package ui

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/zazzlife/zazz-api/internal/client"
	"github.com/zazzlife/zazz-api/internal/database"
	"github.com/zazzlife/zazz-api/internal/token"
)

// Key is a named secret printed by keygen
type Key struct {
	Name  string
	Value string
}

// PrintSuccess prints a one-line success message
func PrintSuccess(msg string) {
	fmt.Println(successStyle.Render(msg))
}

// PrintError prints an error message
func PrintError(msg string) {
	fmt.Println(errorStyle.Render("Error: " + msg))
}

func PrintApplied(versions []int64) {
	if len(versions) == 0 {
		fmt.Println(subtleStyle.Render("Database is up to date"))
		return
	}
	for _, v := range versions {
		fmt.Printf("  applied %05d\n", v)
	}
	PrintSuccess(fmt.Sprintf("Applied %d migration(s)", len(versions)))
}

func PrintMigrationStatus(states []database.MigrationState) {
	fmt.Println(titleStyle.Render("Migrations"))
	for _, s := range states {
		state := subtleStyle.Render("pending")
		if s.Applied {
			state = successStyle.Render("applied")
		}
		fmt.Printf("  %05d  %-30s %s\n", s.Version, s.Path, state)
	}
	fmt.Println()
}

func PrintClients(clients []*client.Client) {
	fmt.Println(titleStyle.Render("Clients"))
	if len(clients) == 0 {
		fmt.Println(subtleStyle.Render("  none registered"))
		return
	}
	for _, c := range clients {
		state := successStyle.Render("active")
		if !c.Active {
			state = errorStyle.Render("disabled")
		}
		fmt.Printf("  %-6d %-30s %s\n", c.ID, c.Name, state)
	}
	fmt.Println()
}

// PrintClientCreated prints the new client with its signing key. The key
// cannot be read back later.
func PrintClientCreated(c *client.Client) {
	PrintSuccess("Client registered")
	fmt.Println()
	fmt.Printf("  ID:   %d\n", c.ID)
	fmt.Printf("  Name: %s\n", c.Name)
	fmt.Printf("  Key:  %s\n", keyStyle.Render(base64.StdEncoding.EncodeToString(c.SigningKey)))
	fmt.Println()
	fmt.Println(subtleStyle.Render("Store the key now; it is not shown again."))
}

// PrintHeaders prints the named headers of h that are set, in order
func PrintHeaders(h http.Header, names []string) {
	for _, name := range names {
		if v := h.Get(name); v != "" {
			fmt.Printf("%s: %s\n", name, v)
		}
	}
}

func PrintToken(t *token.Token) {
	fmt.Println(titleStyle.Render("Token"))
	fmt.Printf("  Type:      %s\n", t.Type)
	fmt.Printf("  User:      %d\n", t.UserID)
	fmt.Printf("  Client:    %d\n", t.ClientID)
	fmt.Printf("  Issued:    %s\n", t.IssuedAt.UTC().Format(time.RFC3339))
	if t.ExpiresAt != nil {
		expiry := t.ExpiresAt.UTC().Format(time.RFC3339)
		if t.Expired(time.Now()) {
			expiry = errorStyle.Render(expiry + " (expired)")
		}
		fmt.Printf("  Expires:   %s\n", expiry)
	} else {
		fmt.Printf("  Expires:   %s\n", subtleStyle.Render("never"))
	}
	if t.ID != nil {
		fmt.Printf("  ID:        %d\n", *t.ID)
	}
	if len(t.Scopes) > 0 {
		fmt.Printf("  Scopes:    %s\n", strings.Join(t.Scopes, " "))
	}
	fmt.Printf("  Issuer:    %s\n", t.Issuer)
	fmt.Printf("  Audience:  %s\n", t.Audience)
}

func PrintKeys(keys []Key) {
	for _, k := range keys {
		fmt.Printf("%s=%s\n", k.Name, k.Value)
	}
}
