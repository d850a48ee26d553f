package io

import (
	"path/filepath"
	"strings"

	"github.com/phil-mansfield/wellpath/angle"
	"github.com/phil-mansfield/wellpath/trajectory"
)

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# Survey file to read stations from. Files ending in .yaml or .yml are read as
# YAML surveys; anything else is read as a whitespace separated table with
# '#' comments.
Input = path/to/survey.txt
# File that the interpolated vertices and positions will be written to.
Output = path/to/output.txt

# Interpolation method. One of:
# [ linear | minimum_curvature | cubic ]
Strategy = minimum_curvature

# Measured depths to evaluate. Repeat the line once per depth.
Depth = 1295.4
Depth = 2690.786592

#######################
# Optional Parameters #
#######################

# Overrides the file type guessed from the Input extension.
# [ table | yaml ]
# Format = table

# Unit of the inclination and azimuth columns of a table survey and of all
# angles written to Output. YAML surveys can also set this per file.
# [ deg | rad ]
# Unit = deg

# Zero-indexed columns of a table survey.
# DepthColumn = 0
# InclinationColumn = 1
# AzimuthColumn = 2

# Number of minimum curvature sub-segments per station interval used by the
# cubic strategy.
# Substeps = 1

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleSampleFile = `[Sample]

#######################
# Required Parameters #
#######################

Input = path/to/survey.txt
Output = path/to/samples.txt

# [ linear | minimum_curvature | cubic ]
Strategy = minimum_curvature

# Number of evenly spaced measured depths to evaluate, running from the first
# station to the last one.
Points = 500

#######################
# Optional Parameters #
#######################

# [ table | yaml ]
# Format = table
# [ deg | rad ]
# Unit = deg
# DepthColumn = 0
# InclinationColumn = 1
# AzimuthColumn = 2
# Substeps = 1

# ProfileFile = prof.out
# LogFile = log.out`

	ExamplePlotFile = `[Plot]

#######################
# Required Parameters #
#######################

Input = path/to/survey.txt
# Output is used as a file name prefix: path/to/well_plan.png and
# path/to/well_section.png are written.
Output = path/to/well

# Interpolation methods to draw. Repeat the line once per method.
Strategy = linear
Strategy = minimum_curvature
Strategy = cubic

#######################
# Optional Parameters #
#######################

# Points = 500
# Width and height of each figure in inches.
# Width = 6
# Height = 6
# Also draw the figures with matplotlib, writing path/to/well_mpl_plan.png
# and path/to/well_mpl_section.png. Requires python with matplotlib.
# PyplotScript = false
# Also write an interactive chart page to path/to/well.html.
# HTML = false

# [ table | yaml ]
# Format = table
# [ deg | rad ]
# Unit = deg
# DepthColumn = 0
# InclinationColumn = 1
# AzimuthColumn = 2
# Substeps = 1

# ProfileFile = prof.out
# LogFile = log.out`
)

type SharedConfig struct {
	// Required
	Input, Output string
	// Optional
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

// SurveyConfig describes how a survey file is read and interpolated.
type SurveyConfig struct {
	SharedConfig

	// Optional
	Format, Unit                                  string
	DepthColumn, InclinationColumn, AzimuthColumn int
	Substeps                                      int
}

func defaultSurveyConfig() SurveyConfig {
	return SurveyConfig{
		Unit:              "deg",
		DepthColumn:       0,
		InclinationColumn: 1,
		AzimuthColumn:     2,
		Substeps:          1,
	}
}

// SurveyFormat returns the Format field, or a format guessed from the Input
// file extension if Format is not set.
func (con *SurveyConfig) SurveyFormat() string {
	if con.Format != "" {
		return strings.ToLower(con.Format)
	}
	switch strings.ToLower(filepath.Ext(con.Input)) {
	case ".yaml", ".yml":
		return YAMLFormat
	}
	return TableFormat
}

func (con *SurveyConfig) ValidFormat() bool {
	f := con.SurveyFormat()
	return f == TableFormat || f == YAMLFormat
}
func (con *SurveyConfig) ValidUnit() bool {
	_, err := angle.ParseUnit(con.Unit)
	return err == nil
}
func (con *SurveyConfig) ValidColumns() bool {
	d, i, a := con.DepthColumn, con.InclinationColumn, con.AzimuthColumn
	return d >= 0 && i >= 0 && a >= 0 && d != i && d != a && i != a
}
func (con *SurveyConfig) ValidSubsteps() bool {
	return con.Substeps > 0
}

// AngleUnit returns the parsed Unit field. It should only be called after
// ValidUnit.
func (con *SurveyConfig) AngleUnit() angle.Unit {
	u, _ := angle.ParseUnit(con.Unit)
	return u
}

// Columns returns the depth, inclination, and azimuth column indices.
func (con *SurveyConfig) Columns() Columns {
	return Columns{con.DepthColumn, con.InclinationColumn, con.AzimuthColumn}
}

// Options returns the interpolator options requested by the config.
func (con *SurveyConfig) Options() []trajectory.Option {
	return []trajectory.Option{trajectory.WithSubsteps(con.Substeps)}
}

func validStrategyName(name string) bool {
	_, err := trajectory.ParseStrategy(name)
	return err == nil
}

type InterpolateConfig struct {
	SurveyConfig

	// Required
	Strategy string
	Depth    []float64
}

func DefaultInterpolateWrapper() *InterpolateWrapper {
	return &InterpolateWrapper{InterpolateConfig{SurveyConfig: defaultSurveyConfig()}}
}

func (con *InterpolateConfig) ValidStrategy() bool {
	return validStrategyName(con.Strategy)
}
func (con *InterpolateConfig) ValidDepth() bool {
	return len(con.Depth) > 0
}

type SampleConfig struct {
	SurveyConfig

	// Required
	Strategy string
	Points   int
}

func DefaultSampleWrapper() *SampleWrapper {
	return &SampleWrapper{SampleConfig{SurveyConfig: defaultSurveyConfig()}}
}

func (con *SampleConfig) ValidStrategy() bool {
	return validStrategyName(con.Strategy)
}
func (con *SampleConfig) ValidPoints() bool {
	return con.Points > 0
}

type PlotConfig struct {
	SurveyConfig

	// Required
	Strategy []string

	// Optional
	Points        int
	Width, Height float64
	PyplotScript  bool
	HTML          bool
}

func DefaultPlotWrapper() *PlotWrapper {
	con := PlotConfig{SurveyConfig: defaultSurveyConfig()}
	con.Points = 500
	con.Width, con.Height = 6, 6
	return &PlotWrapper{con}
}

func (con *PlotConfig) ValidStrategy() bool {
	if len(con.Strategy) == 0 {
		return false
	}
	for _, name := range con.Strategy {
		if !validStrategyName(name) {
			return false
		}
	}
	return true
}
func (con *PlotConfig) ValidPoints() bool {
	return con.Points > 1
}
func (con *PlotConfig) ValidSize() bool {
	return con.Width > 0 && con.Height > 0
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

type SampleWrapper struct {
	Sample SampleConfig
}

type PlotWrapper struct {
	Plot PlotConfig
}
