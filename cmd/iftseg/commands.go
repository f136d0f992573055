package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/ift/adjacency"
	"github.com/katalvlaran/ift/grid"
	"github.com/katalvlaran/ift/opf"
	"github.com/katalvlaran/ift/pathfunc"
	"github.com/katalvlaran/ift/segmentation"
	"github.com/katalvlaran/ift/stats"
)

var sharedFlags = []string{verboseFlag, workersFlag, inFlag, outFlag, maxSideFlag}

func newSegmentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segment",
		Short: "Oriented geodesic star segmentation from object and background seeds",
		Args:  cobra.NoArgs,
		RunE:  runSegment,
	}
	flags := cmd.Flags()
	addImageFlags(flags)
	addSeedFlags(flags)
	flags.Float64(alphaFlag, 0, "orientation bias in [-1, 1]; > 0 favors bright objects on dark background")
	flags.Float64(betaFlag, 1, "boundary exponent in [0, 4]")
	cmd.PreRunE = bindFlagsFunc(append(sharedFlags, objFlag, bkgFlag, alphaFlag, betaFlag)...)

	return cmd
}

func newWatershedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watershed",
		Short: "Oriented watershed from object and background seeds",
		Args:  cobra.NoArgs,
		RunE:  runWatershed,
	}
	flags := cmd.Flags()
	addImageFlags(flags)
	addSeedFlags(flags)
	flags.Float64(strengthFlag, 0, "orientation strength in [0, 1]")
	flags.String(orientationFlag, "extern", "extern (bright object) or intern (dark object)")
	cmd.PreRunE = bindFlagsFunc(append(sharedFlags, objFlag, bkgFlag, strengthFlag, orientationFlag)...)

	return cmd
}

func newClusterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Unsupervised optimum-path forest clustering",
		Args:  cobra.NoArgs,
		RunE:  runCluster,
	}
	flags := cmd.Flags()
	addImageFlags(flags)
	flags.Float64(fractionFlag, 0.3, "fraction of the largest arc weight used as density bandwidth")
	flags.Float64(radiusFlag, 1.5, "adjacency radius")
	cmd.PreRunE = bindFlagsFunc(append(sharedFlags, fractionFlag, radiusFlag)...)

	return cmd
}

func newMSFCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "msf",
		Short: "Minimum spanning forest split into a fixed number of regions",
		Args:  cobra.NoArgs,
		RunE:  runMSF,
	}
	flags := cmd.Flags()
	addImageFlags(flags)
	flags.Int(regionsFlag, 2, "number of regions")
	cmd.PreRunE = bindFlagsFunc(append(sharedFlags, regionsFlag)...)

	return cmd
}

// session bundles what every subcommand loads before running.
type session struct {
	log   *zap.Logger
	img   *grid.Image[uint8]
	stats []stats.Option
}

func open() (*session, error) {
	log, err := newLogger(viper.GetBool(verboseFlag))
	if err != nil {
		return nil, err
	}
	img, err := loadGray(viper.GetString(inFlag), viper.GetInt(maxSideFlag))
	if err != nil {
		return nil, err
	}
	var opts []stats.Option
	if w := viper.GetInt(workersFlag); w > 0 {
		opts = append(opts, stats.WithWorkers(w))
	}
	log.Info("image loaded",
		zap.String("path", viper.GetString(inFlag)),
		zap.Ints("shape", img.Domain().Shape()),
	)

	return &session{log: log, img: img, stats: opts}, nil
}

func (s *session) seeds() (obj, bkg []grid.Node, err error) {
	dom := s.img.Domain()
	if obj, err = parseSeeds(dom, viper.GetStringSlice(objFlag)); err != nil {
		return nil, nil, err
	}
	if bkg, err = parseSeeds(dom, viper.GetStringSlice(bkgFlag)); err != nil {
		return nil, nil, err
	}

	return obj, bkg, nil
}

func (s *session) save(label []int32, count int) error {
	out := viper.GetString(outFlag)
	if err := saveLabels(out, s.img.Domain(), label, count); err != nil {
		return err
	}
	s.log.Info("labels written", zap.String("path", out), zap.Int("labels", count))

	return nil
}

func runSegment(cmd *cobra.Command, _ []string) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.log.Sync() //nolint:errcheck
	obj, bkg, err := s.seeds()
	if err != nil {
		return err
	}
	res, err := segmentation.GeodesicStar(cmd.Context(), s.img, obj, bkg,
		viper.GetFloat64(alphaFlag), viper.GetFloat64(betaFlag),
		segmentation.WithLogger(s.log),
		segmentation.WithStatsOptions(s.stats...),
	)
	if err != nil {
		return err
	}

	return s.save(res.Label, 2)
}

func runWatershed(cmd *cobra.Command, _ []string) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.log.Sync() //nolint:errcheck
	obj, bkg, err := s.seeds()
	if err != nil {
		return err
	}
	orient, err := parseOrientation(viper.GetString(orientationFlag))
	if err != nil {
		return err
	}
	res, err := segmentation.OrientedWatershed(cmd.Context(), s.img, obj, bkg,
		viper.GetFloat64(strengthFlag), orient,
		segmentation.WithLogger(s.log),
		segmentation.WithStatsOptions(s.stats...),
	)
	if err != nil {
		return err
	}

	return s.save(res.Label, 2)
}

func runCluster(cmd *cobra.Command, _ []string) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.log.Sync() //nolint:errcheck
	rel, err := adjacency.Circular(viper.GetFloat64(radiusFlag))
	if err != nil {
		return err
	}
	res, err := opf.SpatialClustering(cmd.Context(), s.img, rel, viper.GetFloat64(fractionFlag),
		opf.WithLogger(s.log),
		opf.WithStatsOptions(s.stats...),
	)
	if err != nil {
		return err
	}

	return s.save(res.Label, res.Clusters)
}

func runMSF(cmd *cobra.Command, _ []string) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.log.Sync() //nolint:errcheck
	p, err := segmentation.MinimumSpanningForest(cmd.Context(), s.img, viper.GetInt(regionsFlag),
		segmentation.WithLogger(s.log),
	)
	if err != nil {
		return err
	}

	return s.save(p.Label, p.Count)
}

func parseOrientation(v string) (pathfunc.Orientation, error) {
	switch v {
	case pathfunc.Extern.String():
		return pathfunc.Extern, nil
	case pathfunc.Intern.String():
		return pathfunc.Intern, nil
	}

	return 0, fmt.Errorf("%w: %q", pathfunc.ErrBadOrientation, v)
}
