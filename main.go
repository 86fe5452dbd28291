// Command twophase-ht evaluates one two-phase heat-transfer correlation
// per invocation and prints the coefficient.
package main

import (
	"fmt"
	"math"
	"os"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"

	"github.com/hsaito-pe/twophase-ht-go/twophase"
)

var correlations = []string{
	"Davis-David", "Elamvaluthi-Srinivas", "Groothuis-Hendal", "Hughmark",
	"Knott", "Kudirka-Grosh-McFadden", "Martin-Sims", "Ravipudi-Godbold",
	"Aggour", "Lazarek-Black", "Li-Wu", "Sun-Mishima", "Yun-Heo-Kim",
	"Thome",
}

func main() {
	parser := argparse.NewParser("twophase-ht", "Heat transfer coefficients for two-phase gas-liquid flow in tubes")

	name := parser.Selector("c", "correlation", correlations, &argparse.Options{
		Required: true,
		Help:     "Correlation to evaluate"})

	// NaN marks an option the user did not supply.
	unset := math.NaN()

	m := parser.Float("m", "mass-flow", &argparse.Options{Default: 1.0, Help: "Mass flow rate [kg/s]"})
	x := parser.Float("x", "quality", &argparse.Options{Default: 0.5, Help: "Vapor quality []"})
	alpha := parser.Float("a", "void-fraction", &argparse.Options{Default: 0.5, Help: "Void fraction []"})
	D := parser.Float("D", "diameter", &argparse.Options{Default: 0.05, Help: "Tube inner diameter [m]"})
	L := parser.Float("L", "length", &argparse.Options{Default: unset, Help: "Tube length [m]"})
	rhol := parser.Float("", "rhol", &argparse.Options{Default: 1000.0, Help: "Liquid density [kg/m^3]"})
	rhog := parser.Float("", "rhog", &argparse.Options{Default: 1.2, Help: "Gas density [kg/m^3]"})
	mul := parser.Float("", "mul", &argparse.Options{Default: 1e-3, Help: "Liquid viscosity [Pa*s]"})
	mug := parser.Float("", "mug", &argparse.Options{Default: 1e-5, Help: "Gas viscosity [Pa*s]"})
	muw := parser.Float("", "muw", &argparse.Options{Default: unset, Help: "Liquid viscosity at the wall [Pa*s]"})
	kl := parser.Float("", "kl", &argparse.Options{Default: 0.6, Help: "Liquid thermal conductivity [W/m/K]"})
	kg := parser.Float("", "kg", &argparse.Options{Default: 0.025, Help: "Gas thermal conductivity [W/m/K]"})
	cpl := parser.Float("", "cpl", &argparse.Options{Default: 4180.0, Help: "Liquid heat capacity [J/kg/K]"})
	cpg := parser.Float("", "cpg", &argparse.Options{Default: 1000.0, Help: "Gas heat capacity [J/kg/K]"})
	hvap := parser.Float("", "hvap", &argparse.Options{Default: 2.26e6, Help: "Heat of vaporization [J/kg]"})
	sigma := parser.Float("", "sigma", &argparse.Options{Default: 0.072, Help: "Surface tension [N/m]"})
	psat := parser.Float("", "psat", &argparse.Options{Default: 1e5, Help: "Vapor pressure [Pa]"})
	pc := parser.Float("", "pc", &argparse.Options{Default: 22e6, Help: "Critical pressure [Pa]"})
	hl := parser.Float("", "hl", &argparse.Options{Default: unset, Help: "Liquid-only heat transfer coefficient [W/m^2/K]"})
	q := parser.Float("q", "heat-flux", &argparse.Options{Default: unset, Help: "Wall heat flux [W/m^2]"})
	te := parser.Float("t", "excess-temperature", &argparse.Options{Default: unset, Help: "Wall excess temperature [K]"})
	water := parser.Flag("", "water", &argparse.Options{Help: "Use the air-water fit of Groothuis-Hendal"})
	turbulent := parser.Flag("", "turbulent", &argparse.Options{Help: "Force the turbulent branch of Aggour"})
	laminar := parser.Flag("", "laminar", &argparse.Options{Help: "Force the laminar branch of Aggour"})

	level := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "Log level"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	logger := logging.GetLogger("twophase-ht")
	switch *level {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	}

	// Wall boundary condition for the boiling correlations; left unset
	// when the user supplied neither flux nor excess temperature.
	var bc twophase.BoundaryCondition
	if !math.IsNaN(*q) {
		bc = twophase.HeatFlux(*q)
	} else if !math.IsNaN(*te) {
		bc = twophase.ExcessTemperature(*te)
	}

	var regime *bool
	if *turbulent {
		v := true
		regime = &v
	} else if *laminar {
		v := false
		regime = &v
	}

	logger.Infof("evaluating %s", *name)

	var h float64
	var err error
	switch *name {
	case "Davis-David":
		h = twophase.DavisDavid(*m, *x, *D, *rhol, *rhog, *cpl, *kl, *mul)
	case "Elamvaluthi-Srinivas":
		h = twophase.ElamvaluthiSrinivas(*m, *x, *D, *rhol, *rhog, *cpl, *kl, *mug, *mul, opt(muw))
	case "Groothuis-Hendal":
		h = twophase.GroothuisHendal(*m, *x, *D, *rhol, *rhog, *cpl, *kl, *mug, *mul, opt(muw), *water)
	case "Hughmark":
		h = twophase.Hughmark(*m, *x, *alpha, *D, *L, *cpl, *kl, mul, opt(muw))
	case "Knott":
		h = twophase.Knott(*m, *x, *D, *rhol, *rhog, cpl, kl, mul, opt(muw), opt(L), opt(hl))
	case "Kudirka-Grosh-McFadden":
		h = twophase.KudirkaGroshMcFadden(*m, *x, *D, *rhol, *rhog, *cpl, *kl, *mug, *mul, opt(muw))
	case "Martin-Sims":
		h = twophase.MartinSims(*m, *x, *D, *rhol, *rhog, *hl)
	case "Ravipudi-Godbold":
		h = twophase.RavipudiGodbold(*m, *x, *D, *rhol, *rhog, *cpl, *kl, *mug, *mul, opt(muw))
	case "Aggour":
		h = twophase.Aggour(*m, *x, *alpha, *D, *rhol, *cpl, *kl, *mul, opt(muw), opt(L), regime)
	case "Lazarek-Black":
		h, err = twophase.LazarekBlack(*m, *D, *mul, *kl, *hvap, bc)
	case "Li-Wu":
		h, err = twophase.LiWu(*m, *x, *D, *rhol, *rhog, *mul, *kl, *hvap, *sigma, bc)
	case "Sun-Mishima":
		h, err = twophase.SunMishima(*m, *D, *rhol, *rhog, *mul, *kl, *hvap, *sigma, bc)
	case "Yun-Heo-Kim":
		h, err = twophase.YunHeoKim(*m, *x, *D, *rhol, *mul, *hvap, *sigma, bc)
	case "Thome":
		h, err = twophase.Thome(*m, *x, *D, *rhol, *rhog, *mul, *mug, *kl, *kg, *cpl, *cpg, *hvap, *sigma, *psat, *pc, bc)
	}
	if err != nil {
		logger.Errorf("%s: %v", *name, err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("h = %g W/m^2/K\n", h)
}

// opt converts an argparse float option into the library's optional
// form: nil when the user left it at the NaN default.
func opt(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) {
		return nil
	}
	return v
}
