package main

import (
	"flag"
	"os"

	"github.com/curtisnewbie/tai"
	"github.com/curtisnewbie/tai/cli"
	"github.com/curtisnewbie/tai/flags"
	"github.com/curtisnewbie/tai/json"
	"github.com/curtisnewbie/tai/julian"
	"github.com/curtisnewbie/tai/utc"
	"github.com/curtisnewbie/tai/version"
	"github.com/spf13/cast"
)

type conversion struct {
	Tai string  `json:"tai"`
	Era string  `json:"era"`
	Utc string  `json:"utc"`
	Mjd float64 `json:"mjd"`
	Jd  float64 `json:"jd"`
}

func main() {
	flags.WithDescription("taiconv " + version.Version + " - convert between TAI seconds, civil UTC and Modified Julian days")
	utcArg := flags.String("utc", "", "Civil UTC date time, e.g., '2017-12-25T01:02:14'", false)
	taiArg := flags.String("tai", "", "Signed TAI seconds since 1900-01-01T00:00:00, e.g., '-159.000000010'", false)
	mjdArg := flags.Float64("mjd", 0, "Modified Julian days, e.g., 58112.043217592596", false)
	jsonArg := flags.Bool("json", false, "Print the conversion as json", false)
	debugArg := flags.Bool("debug", false, "Debug", false)
	flags.Parse()

	var inst tai.Instant
	switch {
	case *utcArg != "":
		u, err := utc.Parse(*utcArg)
		if err != nil {
			cli.Printlnf("Failed to parse -utc, %v", err)
			os.Exit(1)
		}
		inst = u.AsInstant()
	case *taiArg != "":
		parsed, err := tai.ParseInstant(*taiArg)
		if err != nil {
			f, cerr := cast.ToFloat64E(*taiArg)
			if cerr != nil {
				cli.Printlnf("Failed to parse -tai, %v", err)
				os.Exit(1)
			}
			cli.DebugPrintlnf(*debugArg, "-tai parsed as float %v", f)
			if f < 0 {
				parsed = tai.FromPreciseSeconds(-f, tai.Past)
			} else {
				parsed = tai.FromPreciseSeconds(f, tai.Present)
			}
		}
		inst = parsed
	case isFlagSet("mjd"):
		inst = julian.ModifiedJulian{Days: *mjdArg}.AsInstant()
	default:
		cli.Printlnf("One of -utc, -tai, -mjd is required")
		os.Exit(2)
	}

	cli.DebugPrintlnf(*debugArg, "instant: %#v", inst)

	mj := julian.FromInstant(inst)
	conv := conversion{
		Tai: inst.String(),
		Era: inst.Era().String(),
		Utc: utc.FromInstant(inst).String(),
		Mjd: mj.Days,
		Jd:  mj.JulianDays(),
	}

	if *jsonArg {
		s, err := json.SWriteIndent(conv)
		if err != nil {
			cli.Printlnf("Failed to write json, %v", err)
			os.Exit(1)
		}
		cli.Printlnf("%s", s)
		return
	}

	cli.Printlnf("TAI: %s (%s)", conv.Tai, conv.Era)
	cli.Printlnf("UTC: %s", conv.Utc)
	cli.Printlnf("MJD: %v", conv.Mjd)
	cli.Printlnf("JD:  %v", conv.Jd)
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
