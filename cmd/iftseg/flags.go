package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	verboseFlag     = "verbose"
	workersFlag     = "workers"
	inFlag          = "in"
	outFlag         = "out"
	maxSideFlag     = "max-side"
	objFlag         = "obj"
	bkgFlag         = "bkg"
	alphaFlag       = "alpha"
	betaFlag        = "beta"
	strengthFlag    = "strength"
	orientationFlag = "orientation"
	fractionFlag    = "fraction"
	radiusFlag      = "radius"
	regionsFlag     = "regions"
)

// addImageFlags registers the input and output flags shared by every
// subcommand.
func addImageFlags(flags *pflag.FlagSet) {
	flags.String(inFlag, "", "input image")
	flags.String(outFlag, "", "output label image (PNG, JPEG, GIF, TIFF or BMP by extension)")
	flags.Int(maxSideFlag, 0, "shrink the input to fit this many pixels per side; 0 keeps its size")
}

// addSeedFlags registers the object and background seed flags.
func addSeedFlags(flags *pflag.FlagSet) {
	flags.StringSlice(objFlag, nil, "object seeds as x,y pairs; repeatable")
	flags.StringSlice(bkgFlag, nil, "background seeds as x,y pairs; repeatable")
}

// bindFlagsFunc binds the cobra flags of one command to viper keys of the
// same name, so that IFTSEG_ variables fill the flags left unset.
func bindFlagsFunc(names ...string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		for _, name := range names {
			flag := cmd.Flags().Lookup(name)
			if flag == nil {
				flag = cmd.InheritedFlags().Lookup(name)
			}
			if err := viper.BindPFlag(name, flag); err != nil {
				return err
			}
		}

		return nil
	}
}
