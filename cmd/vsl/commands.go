package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/rawbytedev/vsl/bundle"
	"github.com/rawbytedev/vsl/internal/logging"
	"github.com/rawbytedev/vsl/manifest"
)

var errUnformatted = errors.New("descriptor is not canonically formatted")

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the descriptor for structural errors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.load()
			if err != nil {
				return err
			}
			if err := p.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", p.Name)
			return nil
		},
	}
}

func newResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [product...]",
		Short: "Print the targets each product builds, dependencies first",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.load()
			if err != nil {
				return err
			}
			if len(args) == 0 {
				for _, pr := range p.Products {
					args = append(args, pr.Name)
				}
			}
			out := cmd.OutOrStdout()
			for _, name := range args {
				res, err := p.Resolve(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%s) %s\n", res.Product.Name, res.Product.Kind, res.Standard)
				for _, t := range res.Targets {
					fmt.Fprintf(out, "  %s\n", t.Name)
				}
				fmt.Fprintf(out, "  dependencies: %d\n", res.Dependencies())
			}
			return nil
		},
	}
}

func newFmtCmd(opts *options) *cobra.Command {
	var (
		diff   bool
		write  bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "fmt",
		Short: "Rewrite the descriptor in canonical form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(opts.manifest)
			if err != nil {
				return err
			}
			in, err := manifest.FormatFor(opts.manifest)
			if manifest.IsBinary(data) {
				in, err = manifest.FormatBinary, nil
			}
			if err != nil {
				return err
			}
			out := in
			if format != "" {
				if out, err = manifest.ParseFormat(format); err != nil {
					return err
				}
			}
			formatted, d, err := manifest.FormatSource(opts.manifest, data, out)
			if err != nil {
				return err
			}
			switch {
			case diff:
				if d == "" {
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), d)
				return errUnformatted
			case write:
				if out != in {
					return fmt.Errorf("-w cannot change %s to %s", in, out)
				}
				if d == "" && out != manifest.FormatBinary {
					return nil
				}
				logging.Infof("rewriting %s\n", opts.manifest)
				return os.WriteFile(opts.manifest, formatted, 0o644)
			}
			_, err = cmd.OutOrStdout().Write(formatted)
			return err
		},
	}
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print a diff instead of the formatted descriptor and fail if it differs")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the descriptor in place")
	cmd.Flags().StringVar(&format, "format", "", "output format: yaml, json, star or binary (default: input format)")
	cmd.MarkFlagsMutuallyExclusive("diff", "write")
	return cmd
}

func newBundleCmd(opts *options) *cobra.Command {
	var (
		output string
		root   string
		level  string
	)
	cmd := &cobra.Command{
		Use:   "bundle [product]",
		Short: "Pack a product's descriptor and sources into a .tar.zst archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.load()
			if err != nil {
				return err
			}
			product := ""
			if len(args) == 1 {
				product = args[0]
			} else if len(p.Products) > 0 {
				product = p.Products[0].Name
			}
			ok, lvl := zstd.EncoderLevelFromString(level)
			if !ok {
				return fmt.Errorf("unknown compression level %q", level)
			}
			if root == "" {
				root = filepath.Dir(opts.manifest)
			}
			if output == "" {
				output = product + ".tar.zst"
			}
			fd, err := os.Create(output)
			if err != nil {
				return err
			}
			sum, err := bundle.Write(fd, p, root, product, bundle.Options{Level: lvl})
			if cerr := fd.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				os.Remove(output)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", output, sum)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "archive path (default <product>.tar.zst)")
	cmd.Flags().StringVar(&root, "root", "", "directory target paths are relative to (default: the descriptor's directory)")
	cmd.Flags().StringVar(&level, "level", "better", "zstd level: fastest, default, better or best")
	return cmd
}

func newShowCmd(opts *options) *cobra.Command {
	var archive string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Describe the descriptor, or the contents of a bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if archive != "" {
				fd, err := os.Open(archive)
				if err != nil {
					return err
				}
				defer fd.Close()
				p, entries, err := bundle.Read(fd)
				if err != nil {
					return err
				}
				show(out, p)
				var total int64
				for _, e := range entries {
					total += e.Size
					fmt.Fprintf(out, "%10s  %s\n", humanize.Bytes(uint64(e.Size)), e.Name)
				}
				fmt.Fprintf(out, "%d entries, %s\n", len(entries), humanize.Bytes(uint64(total)))
				return nil
			}
			p, err := opts.load()
			if err != nil {
				return err
			}
			show(out, p)
			return nil
		},
	}
	cmd.Flags().StringVarP(&archive, "bundle", "b", "", "show a bundle written by 'vsl bundle' instead")
	return cmd
}

func show(w io.Writer, p *manifest.Package) {
	std := string(p.CXXLanguageStandard)
	if std == "" {
		std = string(manifest.DefaultStandard) + " (default)"
	}
	fmt.Fprintf(w, "package %s\n", p.Name)
	fmt.Fprintf(w, "standard %s\n", std)
	for _, pr := range p.Products {
		fmt.Fprintf(w, "product %s (%s): %s\n", pr.Name, pr.Kind, strings.Join(pr.Targets, ", "))
	}
	for _, t := range p.Targets {
		deps := "none"
		if len(t.Dependencies) > 0 {
			deps = strings.Join(t.Dependencies, ", ")
		}
		fmt.Fprintf(w, "target %s at %s, depends on %s\n", t.Name, t.SourcePath(), deps)
	}
}
