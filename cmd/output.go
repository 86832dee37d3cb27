package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/strat-chain/strat-go/api"
)

// printJSON writes value as indented JSON to the command output
func printJSON(cmd *cobra.Command, value api.Value) error {
	return writeJSON(cmd.OutOrStdout(), value)
}

func writeJSON(w io.Writer, value api.Value) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to format response")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// respond prints a successful response, or returns err annotated with what failed
func respond(cmd *cobra.Command, what string, value api.Value, err error) error {
	if err != nil {
		return errors.Wrapf(err, "failed to %s", what)
	}
	return printJSON(cmd, value)
}

// readSecret prompts on stderr and reads a line without echo
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", errors.Wrap(err, "failed to read input")
	}
	return strings.TrimSpace(string(secret)), nil
}

// readNewSecret prompts twice and requires both entries to match
func readNewSecret(prompt, confirm string) (string, error) {
	secret, err := readSecret(prompt)
	if err != nil {
		return "", err
	}
	again, err := readSecret(confirm)
	if err != nil {
		return "", err
	}
	if secret != again {
		return "", errors.New("entries do not match")
	}
	return secret, nil
}

func addPrivateKeyFlag(cmd *cobra.Command) {
	cmd.Flags().String("private-key", "", "signing key (prompted when omitted)")
}

// privateKey returns --private-key, prompting for it when unset
func privateKey(cmd *cobra.Command) (string, error) {
	key, _ := cmd.Flags().GetString("private-key")
	if key != "" {
		return key, nil
	}

	key, err := readSecret("Enter private key: ")
	if err != nil {
		return "", err
	}
	if key == "" {
		return "", errors.New("private key is required")
	}
	return key, nil
}

func parseUint(name, raw string) (uint64, error) {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid %s %q: must be a non-negative integer", name, raw)
	}
	return n, nil
}

func parseAmount(raw string) (float64, error) {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.Errorf("invalid amount %q", raw)
	}
	if amount <= 0 {
		return 0, errors.New("amount must be positive")
	}
	return amount, nil
}

// parseJSONArg decodes a JSON command argument
func parseJSONArg(name, raw string, out interface{}) error {
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return errors.Wrapf(err, "invalid %s JSON", name)
	}
	return nil
}

func success(format string, args ...interface{}) string {
	return color.GreenString(format, args...)
}

// printf writes to stdout; cobra's Printf defaults to stderr
func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
