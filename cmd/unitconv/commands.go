package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"dimensional/internal/expr"
	"dimensional/units"
)

type options struct {
	catalog string
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:          "unitconv",
		Short:        "Evaluate and convert dimensioned quantities",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&o.catalog, "catalog", "", "YAML unit catalog loaded on top of the built-in units")

	root.AddCommand(
		newEvalCmd(o),
		newConvertCmd(o),
		newUnitsCmd(o),
	)
	return root
}

func (o *options) registry() (*units.Registry, error) {
	reg := units.Builtin()
	if o.catalog == "" {
		return reg, nil
	}
	f, err := os.Open(o.catalog)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if _, err := reg.Load(f); err != nil {
		return nil, fmt.Errorf("%s: %w", o.catalog, err)
	}
	return reg, nil
}

func newEvalCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPRESSION",
		Short: "Evaluate an expression and print it in coherent SI units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := o.registry()
			if err != nil {
				return err
			}
			q, err := expr.New(reg).Eval(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), q)
			return nil
		},
	}
}

func newConvertCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert QUANTITY UNIT",
		Short: "Express a quantity as a multiple of another unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := o.registry()
			if err != nil {
				return err
			}
			v, err := expr.New(reg).Convert(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", strconv.FormatFloat(v, 'g', -1, 64), args[1])
			return nil
		},
	}
}

func newUnitsCmd(o *options) *cobra.Command {
	var (
		export bool
		match  string
	)
	cmd := &cobra.Command{
		Use:   "units",
		Short: "List known units, optionally filtered by a glob such as 'kilo*'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := o.registry()
			if err != nil {
				return err
			}
			if export {
				return units.WriteCatalog(cmd.OutOrStdout(), reg.Catalog())
			}
			list, err := reg.Match(match)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tSYMBOL\tVALUE")
			for _, u := range list {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", u.Name, u.Symbol, u.Quantity)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&export, "export", false, "print the registry as a YAML catalog")
	cmd.Flags().StringVar(&match, "match", "", "glob over unit names, symbols and aliases")
	return cmd
}
