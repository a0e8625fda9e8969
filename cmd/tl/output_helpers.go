package main

import (
	"bufio"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	stringsutil "github.com/taskline/taskline/internal/strings"
)

// printf writes to the command's stdout unless --quiet is set. Errors
// and warnings go through the logger and are never suppressed.
func printf(cmd *cobra.Command, format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}

// printLine writes a line to the command's stdout unless --quiet is set.
func printLine(cmd *cobra.Command, value string) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), value)
}

// encodeJSONToStdout renders v as indented JSON on stdout, for --json
// output meant to be piped into other tools. It ignores --quiet.
func encodeJSONToStdout(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "    ")
	return encoder.Encode(v)
}

// confirm asks a yes/no question on stdout and reads the answer from
// stdin. Anything other than y/yes counts as no.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N] ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("read confirmation: %w", err)
	}

	switch stringsutil.NormalizeLowerTrimSpace(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
