package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"log-format-enforcer/internal/verify"
)

type inspectOptions struct {
	backend  string
	typeName string
	method   string
	dump     bool
}

func newInspectCmd() *cobra.Command {
	opts := &inspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Parse a Go file and print or query its declarations",
		Long: `Inspect parses FILE with the selected backend and prints its declaration
tree. With --type and/or --method it resolves exactly one declaration and
fails when there is no match or more than one. --method without --type
searches the first type declared in the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.backend, "backend", "b", verify.GoBackend{}.Name(),
		"Parser backend ("+strings.Join(verify.BackendNames(), "|")+")")
	cmd.Flags().StringVarP(&opts.typeName, "type", "t", "", "Type to resolve")
	cmd.Flags().StringVarP(&opts.method, "method", "m", "", "Method to resolve")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the parsed tree with go-spew")

	return cmd
}

func runInspect(cmd *cobra.Command, path string, opts *inspectOptions) error {
	backend, err := verify.BackendByName(opts.backend)
	if err != nil {
		return err
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	tree, err := verify.New(backend).Parse(src)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("Parsed file",
		zap.String("path", path),
		zap.String("backend", tree.Backend),
		zap.Int("decls", len(tree.Root.Children)))

	out := cmd.OutOrStdout()

	if opts.typeName == "" && opts.method == "" {
		if opts.dump {
			spewConfig().Fdump(out, tree.Root)

			return nil
		}

		printTree(out, tree.Root, 0)

		return nil
	}

	scope, err := resolveScope(tree, opts.typeName)
	if err != nil {
		return err
	}

	found := scope
	if opts.method != "" {
		found, err = verify.FindMethod(scope, opts.method)
		if err != nil {
			return err
		}
	}

	if opts.dump {
		spewConfig().Fdump(out, found)

		return nil
	}

	fmt.Fprintf(out, "%s %s at %s:%d\n", found.Kind, found.Name, path, found.Line)

	return nil
}

func resolveScope(tree *verify.Tree, typeName string) (*verify.Node, error) {
	if typeName == "" {
		return tree.PrimaryType()
	}

	return verify.FindType(tree, typeName)
}

func spewConfig() *spew.ConfigState {
	return &spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true, SortKeys: true}
}

// printTree writes one declaration per line, indented by depth.
func printTree(w io.Writer, n *verify.Node, depth int) {
	fmt.Fprintf(w, "%s%s %s (line %d)\n", strings.Repeat("  ", depth), n.Kind, n.Name, n.Line)

	for _, c := range n.Children {
		printTree(w, c, depth+1)
	}
}
