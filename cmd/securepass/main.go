// Command securepass evaluates or generates credentials locally, without a server.
//
//	echo -n 'Password123!' | securepass check [-json] [-estimate=false]
//	securepass gen [-length 16] [-upper] [-lower] [-digits] [-special]
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/securepass/securepass-go/internal/crypto"
	"github.com/securepass/securepass-go/internal/model"
	"github.com/securepass/securepass-go/internal/service"
)

const usage = "usage: securepass check [-json] [-estimate=false] < password\n       securepass gen [-length N] [-upper] [-lower] [-digits] [-special]"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	switch args[0] {
	case "check":
		return runCheck(args[1:], stdin, stdout, stderr)
	case "gen":
		return runGen(args[1:], stdout, stderr)
	default:
		fmt.Fprintln(stderr, usage)
		return 2
	}
}

func runCheck(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jsonOut := fs.Bool("json", false, "output as JSON")
	estimate := fs.Bool("estimate", true, "include the zxcvbn guess estimate")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	password, err := readPassword(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "read password: %v\n", err)
		return 1
	}

	resp := service.NewEvaluatorService(*estimate).Evaluate(model.EvaluateRequest{Password: password})

	if *jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(resp); err != nil {
			fmt.Fprintf(stderr, "encode: %v\n", err)
			return 1
		}
		return 0
	}

	printEvaluation(stdout, resp)
	return 0
}

func runGen(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	length := fs.Int("length", 16, "password length")
	upper := fs.Bool("upper", true, "include A-Z")
	lower := fs.Bool("lower", true, "include a-z")
	digits := fs.Bool("digits", true, "include 0-9")
	special := fs.Bool("special", true, "include !@#$%^&*()_+-=")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var classes crypto.ClassSet
	for _, c := range []struct {
		on    bool
		class crypto.ClassSet
	}{
		{*upper, crypto.Uppercase},
		{*lower, crypto.Lowercase},
		{*digits, crypto.Digit},
		{*special, crypto.Special},
	} {
		if c.on {
			classes |= c.class
		}
	}

	password, err := crypto.Generate(crypto.Request{Length: *length, Classes: classes})
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		if errors.Is(err, crypto.ErrNoCharacterClassSelected) || errors.Is(err, crypto.ErrInvalidLength) {
			return 2
		}
		return 1
	}

	fmt.Fprintln(stdout, password)
	return 0
}

// readPassword returns the first line of r without its line terminator.
func readPassword(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func printEvaluation(w io.Writer, resp model.EvaluateResponse) {
	fmt.Fprintf(w, "Strength:       %s (%d/100)\n", resp.Category, resp.Score)
	fmt.Fprintf(w, "Length:         %d chars\n", resp.Features.Length)
	fmt.Fprintf(w, "Complexity:     %d/4\n", resp.Features.ClassCount)
	fmt.Fprintf(w, "Predictability: %s\n", resp.Predictability)
	if e := resp.Estimate; e != nil {
		fmt.Fprintf(w, "Estimate:       %s, %.1f bits, cracked in %s\n", e.Label, e.EntropyBits, e.CrackTime)
	}
	fmt.Fprintln(w, "Recommendations:")
	for _, s := range resp.Suggestions {
		fmt.Fprintf(w, "  - %s\n", s)
	}
}
