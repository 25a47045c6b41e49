package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/flightbook/internal/common"
)

// getSimpleText, getPassword, getInt and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getInt = GetInt
var getYesNo = GetYesNo

// Create prompts for a username, password and initial balance and asks the
// booking service to create the account. The password bytes are wiped before
// returning.
func (a *App) Create(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	balance, err := getInt(a.reader, "Enter initial balance", os.Stdout)
	if err != nil {
		common.WipeByteArray(password)
		return err
	}

	result := a.svc.CreateAccount(ctx, username, string(password), balance)
	common.WipeByteArray(password)
	printlnFn(result)
	return nil
}

// Login prompts for credentials and authenticates the shell's session. The
// outcome, success or not, is whatever message the booking service produced.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	result := a.svc.Login(ctx, a.sess, username, string(password))
	common.WipeByteArray(password)
	printlnFn(result)
	return nil
}
