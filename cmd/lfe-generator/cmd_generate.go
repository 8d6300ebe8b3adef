package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"log-format-enforcer/internal/analyze"
	"log-format-enforcer/internal/common"
	"log-format-enforcer/internal/config"
	"log-format-enforcer/internal/gen"
	"log-format-enforcer/internal/verify"
)

type generateOptions struct {
	configPath string
	outDir     string
	check      bool
	dryRun     bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the log format enforcer described by a config file",
		Long: `Generate reads the YAML layout, generates the enforcer source, verifies
that LogEntry exposes exactly one Format method and writes the file.

With --check the output is also type-checked in a temporary module.
When the config leaves the package empty, it is derived from the output
directory's position in the enclosing Go module.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "lfe.yaml", "Path to the YAML config file")
	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "Output directory (default: output.dir from the config, else .)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Type-check the generated code before writing it")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the generated code instead of writing it")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	file, err := config.LoadFile(opts.configPath)
	if err != nil {
		return err
	}

	outDir := opts.outDir
	if outDir == "" {
		outDir = file.Output.Dir
	}

	if outDir == "" {
		outDir = "."
	}

	if file.Package == "" {
		file.Package = inferPackage(outDir)
	}

	logger.Debug("Loaded config",
		zap.String("path", opts.configPath),
		zap.String("package", file.Package),
		zap.Int("fields", len(file.Fields)),
		zap.String("out", outDir))

	generated, err := gen.NewGenerator(file.GeneratorOptions(outDir)).Generate(file.GeneratorConfig())
	if err != nil {
		return err
	}

	for _, info := range generated.Infos {
		logger.Info("Config note", zap.String("code", info.Code), zap.String("message", info.Message))
	}

	for _, w := range generated.Warnings {
		logger.Warn("Config warning", zap.String("code", w.Code), zap.String("path", w.Path), zap.String("message", w.Message))
	}

	if err := verifyGenerated(generated.Content); err != nil {
		return err
	}

	if opts.check {
		if err := typeCheck(ctx, file.Package, generated); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()

	if opts.dryRun {
		_, err := out.Write(generated.Content)

		return err
	}

	path, err := gen.WriteFile(generated, outDir)
	if err != nil {
		return err
	}

	logger.Info("Generated enforcer", zap.String("file", path), zap.Int("bytes", len(generated.Content)))
	fmt.Fprintln(out, path)

	return nil
}

// inferPackage derives the package path from the module enclosing outDir.
// Outside a module, or when the directory name is not a valid package name,
// it returns "" and the generator default applies.
func inferPackage(outDir string) string {
	pkgPath, err := analyze.PackagePath(outDir)
	if err != nil {
		if !errors.Is(err, analyze.ErrNoModule) {
			logger.Warn("Could not infer package path", zap.String("dir", outDir), zap.Error(err))
		}

		return ""
	}

	if diags := gen.Validate(gen.GeneratorConfig{PackageName: pkgPath}); diags.HasErrors() {
		logger.Debug("Inferred package path unusable, using default",
			zap.String("package", pkgPath), zap.Error(diags.Error()))

		return ""
	}

	logger.Debug("Inferred package path", zap.String("package", pkgPath))

	return pkgPath
}

// verifyGenerated asserts the structural contract of generated code: the
// formatter and entry types exist and the entry has exactly one Format method.
func verifyGenerated(src []byte) error {
	tree, err := verify.Parse(src)
	if err != nil {
		return fmt.Errorf("generated code: %w", err)
	}

	if _, err := verify.FindType(tree, gen.EnforcerTypeName); err != nil {
		return fmt.Errorf("generated code: %w", err)
	}

	entry, err := verify.FindType(tree, gen.EntryTypeName)
	if err != nil {
		return fmt.Errorf("generated code: %w", err)
	}

	if _, err := verify.FindMethod(entry, gen.FormatMethodName); err != nil {
		return fmt.Errorf("generated code: %w", err)
	}

	return nil
}

func typeCheck(ctx context.Context, pkgPath string, file *gen.GeneratedFile) error {
	clause := gen.DefaultPackageName
	if pkgPath != "" {
		clause = common.PackageClause(pkgPath)
	}

	report, err := analyze.Check(ctx, clause, file.Filename, file.Content)
	if err != nil {
		return fmt.Errorf("type check: %w", err)
	}

	if !report.OK() {
		msgs := make([]string, 0, len(report.Errors))
		for _, e := range report.Errors {
			msgs = append(msgs, e.Error())
		}

		return fmt.Errorf("generated code does not type-check:\n%s", strings.Join(msgs, "\n"))
	}

	logger.Debug("Type check passed",
		zap.String("package", report.PkgPath),
		zap.Int("types", len(report.Types)))

	return nil
}
