package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"strings"

	"github.com/golang/geo/r3"
	plt "github.com/phil-mansfield/pyplot"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/wellpath/io"
	"github.com/phil-mansfield/wellpath/plot"
	"github.com/phil-mansfield/wellpath/survey"
	"github.com/phil-mansfield/wellpath/trajectory"
)

// threads is the number of worker goroutines used when sampling.
var threads int

type FileGroup struct {
	log, prof *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	// Each mode reads its own config file, checks it, then hands off to a
	// secondary main function.

	var (
		interpolate, sample, plotStr string
		exampleConfig                string
	)
	vars := map[string]*string{
		"Interpolate":   &interpolate,
		"Sample":        &sample,
		"Plot":          &plotStr,
		"ExampleConfig": &exampleConfig,
	}

	flag.IntVar(
		&threads, "Threads", runtime.NumCPU(),
		"Number of threads used. Default is the number of logical cores.",
	)
	flag.StringVar(
		&interpolate, "Interpolate", "",
		"Configuration file for [Interpolate] mode.",
	)
	flag.StringVar(
		&sample, "Sample", "",
		"Configuration file for [Sample] mode.",
	)
	flag.StringVar(
		&plotStr, "Plot", "",
		"Configuration file for [Plot] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the "+
			"specified type to stdout. Accepted arguments are 'Interpolate', "+
			"'Sample', and 'Plot'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Interpolate":
		wrap := io.DefaultInterpolateWrapper()
		err := gcfg.ReadFileInto(wrap, interpolate)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Interpolate

		checkSurveyConfig(&con.SurveyConfig)
		if !con.ValidStrategy() {
			log.Fatalf("Invalid/non-existent 'Strategy' value '%s'.",
				con.Strategy)
		} else if !con.ValidDepth() {
			log.Fatal("Must supply at least one 'Depth' value.")
		}
		interpolateMain(con)

	case "Sample":
		wrap := io.DefaultSampleWrapper()
		err := gcfg.ReadFileInto(wrap, sample)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Sample

		checkSurveyConfig(&con.SurveyConfig)
		if !con.ValidStrategy() {
			log.Fatalf("Invalid/non-existent 'Strategy' value '%s'.",
				con.Strategy)
		} else if !con.ValidPoints() {
			log.Fatal("Invalid/non-existent 'Points' value.")
		}
		sampleMain(con)

	case "Plot":
		wrap := io.DefaultPlotWrapper()
		err := gcfg.ReadFileInto(wrap, plotStr)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Plot

		checkSurveyConfig(&con.SurveyConfig)
		if !con.ValidStrategy() {
			log.Fatal("Invalid/non-existent 'Strategy' value.")
		} else if !con.ValidPoints() {
			log.Fatal("'Points' must be at least 2.")
		} else if !con.ValidSize() {
			log.Fatal("'Width' and 'Height' must be positive.")
		}
		plotMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Interpolate":
			fmt.Println(io.ExampleInterpolateFile)
		case "Sample":
			fmt.Println(io.ExampleSampleFile)
		case "Plot":
			fmt.Println(io.ExamplePlotFile)
		default:
			log.Fatalf(
				"'%s' is not a valid config type. Accepted types are "+
					"'Interpolate', 'Sample', and 'Plot'.", exampleConfig,
			)
		}
	}
}

// getModeName returns the name of the one mode flag which was set.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		sort.Strings(setNames)
		return "", fmt.Errorf(
			"The following flags were set: %s, but wellpath "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func checkSurveyConfig(con *io.SurveyConfig) {
	if !con.ValidInput() {
		log.Fatal("Invalid/non-existent 'Input' value.")
	} else if !con.ValidOutput() {
		log.Fatal("Invalid/non-existent 'Output' value.")
	} else if !con.ValidFormat() {
		log.Fatalf("Invalid 'Format' value '%s'.", con.Format)
	} else if !con.ValidUnit() {
		log.Fatalf("Invalid 'Unit' value '%s'.", con.Unit)
	} else if !con.ValidColumns() {
		log.Fatal("Column indices must be distinct and non-negative.")
	} else if !con.ValidSubsteps() {
		log.Fatal("'Substeps' must be positive.")
	}
}

// setupIO opens the optional log and profile files and reads the survey.
func setupIO(con *io.SurveyConfig) (*survey.Stations, *FileGroup) {
	var err error
	fg := new(FileGroup)

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	st, err := io.ReadSurvey(
		con.Input, con.SurveyFormat(), con.Columns(), con.AngleUnit(),
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Read %d stations from %s.", st.Size(), con.Input)

	return st, fg
}

func newInterpolator(
	st *survey.Stations, con *io.SurveyConfig, strategy string,
) *trajectory.Interpolator {
	ip, err := trajectory.NewByName(st, strategy, con.Options()...)
	if err != nil {
		log.Fatal(err.Error())
	}
	return ip
}

func interpolateMain(con *io.InterpolateConfig) {
	st, fg := setupIO(&con.SurveyConfig)
	defer fg.Close()
	ip := newInterpolator(st, &con.SurveyConfig, con.Strategy)

	vs := make([]survey.Vertex, len(con.Depth))
	ps := make([]r3.Vector, len(con.Depth))
	for i, q := range con.Depth {
		var err error
		if vs[i], err = ip.VertexAt(q); err != nil {
			log.Fatalf("Depth %d: %s", i, err.Error())
		}
		if ps[i], err = ip.PositionAt(q); err != nil {
			log.Fatalf("Depth %d: %s", i, err.Error())
		}
	}

	writeOutput(con.SurveyConfig, ip, vs, ps)
}

func sampleMain(con *io.SampleConfig) {
	st, fg := setupIO(&con.SurveyConfig)
	defer fg.Close()
	ip := newInterpolator(st, &con.SurveyConfig, con.Strategy)

	vs, err := ip.Sample(con.Points, threads)
	if err != nil {
		log.Fatal(err.Error())
	}
	ps, err := ip.SampleProjections(con.Points, threads)
	if err != nil {
		log.Fatal(err.Error())
	}

	writeOutput(con.SurveyConfig, ip, vs, ps)
}

func writeOutput(
	con io.SurveyConfig, ip *trajectory.Interpolator,
	vs []survey.Vertex, ps []r3.Vector,
) {
	hd := io.TrajectoryHeader{
		Input: con.Input, Strategy: ip.StrategyName(), Unit: con.AngleUnit(),
	}
	err := io.WriteTrajectoryFile(con.Output, hd, vs, ps)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %d rows to %s.", len(vs), con.Output)
}

func plotMain(con *io.PlotConfig) {
	st, fg := setupIO(&con.SurveyConfig)
	defer fg.Close()

	tracks := make([]plot.Track, len(con.Strategy))
	for i, name := range con.Strategy {
		ip := newInterpolator(st, &con.SurveyConfig, name)
		var err error
		tracks[i], err = plot.NewTrack(ip, con.Points, threads)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	files, err := plot.SavePNG(
		con.Output, con.Input, tracks, con.Width, con.Height,
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf("Wrote %s.", strings.Join(files, ", "))

	if con.HTML {
		file, err := plot.SaveHTML(con.Output, con.Input, tracks)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.Printf("Wrote %s.", file)
	}

	if con.PyplotScript {
		plot.QueuePyplot(con.Output+"_mpl", con.Input, tracks)
		plt.Execute()
	}
}
