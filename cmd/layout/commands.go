package main

import (
	"fmt"
	"io"
	"strings"

	goerrors "errors"

	"github.com/VorpalBlade/layout-of/errors"
	"github.com/VorpalBlade/layout-of/inspect"
	"github.com/VorpalBlade/layout-of/render"
	"github.com/VorpalBlade/layout-of/typesys"
)

// commands binds the two layout operations to a resolver and an output.
type commands struct {
	resolver typesys.Resolver
	out      io.Writer
	styles   render.Styles
}

// offsetsOf implements "offsets-of <type-or-symbol>": one flat line per
// member in resolver order.
func (c *commands) offsetsOf(argv []string) error {
	if len(argv) != 1 {
		return errors.Usage("offsets-of takes exactly 1 argument")
	}

	desc, err := c.resolver.Resolve(argv[0])
	if err != nil {
		return err
	}

	rows, err := inspect.ListOffsets(desc)
	if err != nil {
		return err
	}

	displayName := argv[0]
	if desc.Name != "" && desc.Name != argv[0] {
		displayName += " (" + desc.Name + ")"
	}
	fmt.Fprintln(c.out, displayName+" {")
	for _, row := range rows {
		if row.Unresolved {
			fmt.Fprintf(c.out, "  %s => ? (static member?)\n", row.Name)
		} else {
			fmt.Fprintf(c.out, "  %s => %d\n", row.Name, row.Offset)
		}
	}
	fmt.Fprintln(c.out, "}")
	return nil
}

// layoutOf implements "layout-of [-r] <type-or-symbol>". The -r flag must
// come first; any other shape is a usage error raised before resolution.
func (c *commands) layoutOf(argv []string) error {
	recursive := false
	if len(argv) == 2 && argv[0] == "-r" {
		recursive = true
		argv = argv[1:]
	}
	if len(argv) != 1 {
		return errors.Usage("usage: layout-of [-r] <type-or-symbol>")
	}

	desc, err := c.resolver.Resolve(argv[0])
	if err != nil {
		return err
	}

	w := inspect.NewWalker(c.out, c.styles)
	holes, padding, err := w.Walk(desc, argv[0], recursive)
	if err != nil {
		var le *errors.Error
		if goerrors.As(err, &le) && le.Kind == errors.KindNotAStruct {
			// Informational, not a command failure.
			name := desc.Name
			if name == "" {
				name = argv[0]
			}
			fmt.Fprintf(c.out, "%s is not a class or struct\n", name)
			return nil
		}
		return err
	}

	w.Report(desc, holes, padding, recursive)
	return nil
}

// splitArgs tokenizes a command line shell-style: whitespace separates
// arguments, single or double quotes group text containing spaces, and a
// backslash escapes the next character outside single quotes.
func splitArgs(line string) ([]string, error) {
	var args []string
	var cur strings.Builder
	started := false

	const (
		bare = iota
		single
		double
	)
	state := bare
	escaped := false

	for _, r := range line {
		if escaped {
			cur.WriteRune(r)
			escaped = false
			continue
		}
		switch state {
		case bare:
			switch {
			case r == '\\':
				escaped = true
				started = true
			case r == '\'':
				state = single
				started = true
			case r == '"':
				state = double
				started = true
			case r == ' ' || r == '\t':
				if started {
					args = append(args, cur.String())
					cur.Reset()
					started = false
				}
			default:
				cur.WriteRune(r)
				started = true
			}
		case single:
			if r == '\'' {
				state = bare
			} else {
				cur.WriteRune(r)
			}
		case double:
			switch r {
			case '"':
				state = bare
			case '\\':
				escaped = true
			default:
				cur.WriteRune(r)
			}
		}
	}

	if escaped || state != bare {
		return nil, errors.InvalidInput("unterminated quote in %q", line)
	}
	if started {
		args = append(args, cur.String())
	}
	return args, nil
}
