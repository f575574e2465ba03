package main

import (
	"math"

	"github.com/curtisnewbie/tai"
	"github.com/curtisnewbie/tai/cli"
	"github.com/curtisnewbie/tai/flags"
	"github.com/curtisnewbie/tai/plotutil"
	"github.com/curtisnewbie/tai/sim"
	"github.com/curtisnewbie/tai/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/plotter"
)

const (
	PropSimPpm     = "sim.ppm"
	PropSimSpan    = "sim.span"
	PropSimTruth   = "sim.truth"
	PropSimSamples = "sim.samples"
	PropSimPlot    = "sim.plot"
)

var log = logrus.New()

func main() {
	log.SetFormatter(cli.PreConfiguredFormatter())

	flags.WithDescription("taisim " + version.Version + " - simulate oscillator clock drift over a time span")
	configArg := flags.String("config", "", "Path to yaml config file", false)
	flags.Parse()

	viper.SetDefault(PropSimPpm, 1.0)
	viper.SetDefault(PropSimSpan, "1s")
	viper.SetDefault(PropSimTruth, 60.0)
	viper.SetDefault(PropSimSamples, 100)
	viper.SetDefault(PropSimPlot, "")

	if *configArg != "" {
		viper.SetConfigFile(*configArg)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatalf("Failed to read config file '%v', %v", *configArg, err)
		}
	}

	ppm := viper.GetFloat64(PropSimPpm)
	span := viper.GetString(PropSimSpan)
	truth := viper.GetFloat64(PropSimTruth)
	samples := viper.GetInt(PropSimSamples)
	plotFile := viper.GetString(PropSimPlot)

	var noise sim.ClockNoise
	switch span {
	case "1s":
		noise = sim.WithPpmOver1Sec(ppm)
	case "1min":
		noise = sim.WithPpmOver1Min(ppm)
	case "15min":
		noise = sim.WithPpmOver15Min(ppm)
	default:
		log.Fatalf("Unknown %v '%v', expecting one of: 1s, 1min, 15min", PropSimSpan, span)
	}

	if truth <= 0 {
		log.Fatalf("Illegal %v %v, the noiseless span must be positive", PropSimTruth, truth)
	}
	if samples < 1 {
		log.Fatalf("Illegal %v %v", PropSimSamples, samples)
	}

	noiseless := tai.FromPreciseSeconds(truth, tai.Present).Span()
	log.Infof("Simulating %v samples of %v drift at %v ppm over %v", samples, noiseless, ppm, span)

	var (
		xys      = make(plotter.XYs, 0, samples)
		sum      float64
		min, max = math.MaxFloat64, -math.MaxFloat64
	)
	for n := 0; n < samples; n++ {
		noisy := noise.NoiseUp(noiseless)
		drift := noisy.Seconds() - noiseless.Seconds()
		sum += drift
		if drift < min {
			min = drift
		}
		if drift > max {
			max = drift
		}
		xys = append(xys, plotter.XY{X: float64(n), Y: drift})
	}

	log.WithFields(logrus.Fields{
		"mean": sum / float64(samples),
		"min":  min,
		"max":  max,
	}).Infof("Simulation completed")

	if plotFile != "" {
		err := plotutil.PlotLine("Simulated Clock Drift", xys, plotFile,
			plotutil.WithXLabel("sample"),
			plotutil.WithYLabel("drift (s)"),
			plotutil.WithLineLabel(span))
		if err != nil {
			log.Fatalf("Failed to plot drift, %v", err)
		}
		log.Infof("Drift plotted to %v", plotFile)
	}
}
