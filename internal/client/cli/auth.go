package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tallerkeeper/internal/common"
)

// getSimpleText, getOptionalText and getPassword are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getOptionalText = GetOptionalText
	getPassword     = GetPassword
)

func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register prompts for an optional user name, an email and a password and
// creates the account. The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getOptionalText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	id, err := a.api.Register(ctx, userName, email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Registered, user id %d\n", id)
	return nil
}

// Login checks the credentials against the server and, on success, shows
// the email in the prompt. The server keeps no session.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.api.Login(ctx, email, password); err != nil {
		return err
	}

	a.mu.Lock()
	a.userName = email
	a.mu.Unlock()

	fmt.Fprintln(a.out, "Login successful")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.mu.Lock()
	a.userName = ""
	a.mu.Unlock()
	return nil
}
