// Command client is a small command-line front end for the contacts API.
// It speaks the same envelope format as the server and authenticates with
// the opaque token printed by the login command.
//
// Usage:
//
//	client -s http://localhost:8080 register -username akmal -password secret -name "Akmal"
//	client -s http://localhost:8080 login -username akmal -password secret
//	client -s http://localhost:8080 -token <token> contacts -name akm -page 1 -size 10
//	client -s http://localhost:8080 -token <token> contact-create -first-name Akmal -email a@b.c
//	client -s http://localhost:8080 -token <token> addresses -contact 1
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/akmalmp/go-contacts/internal/adapter"
	"github.com/akmalmp/go-contacts/models"
)

func main() {
	serverAddr := flag.String("s", "http://localhost:8080", "server base URL")
	token := flag.String("token", os.Getenv("CONTACTS_TOKEN"), "opaque API token (or CONTACTS_TOKEN env)")
	timeout := flag.Duration("timeout", 15*time.Second, "request timeout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "no command given; expected one of: register, login, current, logout, contacts, contact-create, contact-get, contact-delete, addresses")
		os.Exit(2)
	}

	api := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: *serverAddr,
		Timeout: *timeout,
	})
	api.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	command := flag.Arg(0)
	args := flag.Args()[1:]

	if err := runCommand(ctx, api, command, args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", command, err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, api adapter.ServerAdapter, command string, args []string) error {
	switch command {
	case "register":
		return register(ctx, api, args)
	case "login":
		return login(ctx, api, args)
	case "current":
		view, err := api.CurrentUser(ctx)
		if err != nil {
			return err
		}
		return printJSON(view)
	case "logout":
		return api.Logout(ctx)
	case "contacts":
		return searchContacts(ctx, api, args)
	case "contact-create":
		return createContact(ctx, api, args)
	case "contact-get":
		return getContact(ctx, api, args)
	case "contact-delete":
		return deleteContact(ctx, api, args)
	case "addresses":
		return listAddresses(ctx, api, args)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func register(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password")
	name := fs.String("name", "", "display name")
	fs.Parse(args)

	view, err := api.Register(ctx, models.RegisterRequest{
		Username: *username,
		Password: *password,
		Name:     *name,
	})
	if err != nil {
		return err
	}
	return printJSON(view)
}

func login(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "username")
	password := fs.String("password", "", "password")
	fs.Parse(args)

	view, err := api.Login(ctx, models.LoginRequest{
		Username: *username,
		Password: *password,
	})
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s, token: %s\n", view.Username, api.Token())
	return nil
}

func searchContacts(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("contacts", flag.ExitOnError)
	name := fs.String("name", "", "filter by first or last name substring")
	email := fs.String("email", "", "filter by email substring")
	phone := fs.String("phone", "", "filter by phone substring")
	page := fs.Int("page", 0, "page number (1-indexed)")
	size := fs.Int("size", 0, "page size")
	fs.Parse(args)

	contacts, meta, err := api.SearchContacts(ctx,
		models.ContactFilter{Name: *name, Email: *email, Phone: *phone},
		models.PageRequest{Page: *page, Size: *size})
	if err != nil {
		return err
	}

	if err = printJSON(contacts); err != nil {
		return err
	}
	if meta != nil {
		fmt.Printf("page %d/%d, total %d\n", meta.CurrentPage, meta.TotalPage, meta.Total)
	}
	return nil
}

func createContact(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("contact-create", flag.ExitOnError)
	firstName := fs.String("first-name", "", "first name (required)")
	lastName := fs.String("last-name", "", "last name")
	email := fs.String("email", "", "email address")
	phone := fs.String("phone", "", "phone number")
	fs.Parse(args)

	contact, err := api.CreateContact(ctx, models.ContactRequest{
		FirstName: *firstName,
		LastName:  *lastName,
		Email:     *email,
		Phone:     *phone,
	})
	if err != nil {
		return err
	}
	return printJSON(contact)
}

func getContact(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("contact-get", flag.ExitOnError)
	id := fs.Int64("id", 0, "contact id")
	fs.Parse(args)

	contact, err := api.GetContact(ctx, *id)
	if err != nil {
		return err
	}
	return printJSON(contact)
}

func deleteContact(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("contact-delete", flag.ExitOnError)
	id := fs.Int64("id", 0, "contact id")
	fs.Parse(args)

	return api.DeleteContact(ctx, *id)
}

func listAddresses(ctx context.Context, api adapter.ServerAdapter, args []string) error {
	fs := flag.NewFlagSet("addresses", flag.ExitOnError)
	contactID := fs.Int64("contact", 0, "contact id")
	fs.Parse(args)

	addresses, err := api.ListAddresses(ctx, *contactID)
	if err != nil {
		return err
	}
	return printJSON(addresses)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
