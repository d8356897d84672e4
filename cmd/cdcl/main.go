// Command cdcl reads a DIMACS CNF file and reports SAT or UNSAT.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/solverkit/cdcl/internal/dimacs"
	"github.com/solverkit/cdcl/internal/sat"
)

var flagCPUProfile = flag.Bool(
	"cpuprof",
	false,
	"save pprof CPU profile in cpuprof",
)

var flagMemProfile = flag.Bool(
	"memprof",
	false,
	"save pprof memory profile in memprof",
)

var flagVerbose = flag.Bool(
	"verbose",
	false,
	"print progress lines to stdout while searching",
)

var flagAll = flag.Bool(
	"all",
	false,
	"enumerate every model instead of stopping at the first one",
)

func parseConfig() (*config, error) {
	flag.Parse()

	if flag.NArg() == 0 || flag.Arg(0) == "" {
		return nil, fmt.Errorf("missing instance file")
	}
	return &config{
		instanceFile: flag.Arg(0),
		memProfile:   *flagMemProfile,
		cpuProfile:   *flagCPUProfile,
		verbose:      *flagVerbose,
		all:          *flagAll,
	}, nil
}

type config struct {
	instanceFile string
	memProfile   bool
	cpuProfile   bool
	verbose      bool
	all          bool
}

func run(cfg *config) error {
	instance, err := dimacs.ParseDIMACS(cfg.instanceFile)
	if err != nil {
		return fmt.Errorf("could not parse instance: %s", err)
	}

	s := sat.NewSolver(sat.Options{Verbose: cfg.verbose})
	if err := dimacs.Instantiate(s, instance); err != nil {
		return fmt.Errorf("could not instantiate instance: %s", err)
	}

	fmt.Printf("c variables:  %d\n", instance.Variables)
	fmt.Printf("c clauses:    %d\n", len(instance.Clauses))

	t := time.Now()
	var status sat.Result
	if cfg.all {
		sat.EnumerateModels(s)
		if len(s.Models) > 0 {
			status = sat.SAT
		} else {
			status = sat.UNSAT
		}
	} else {
		status = s.Solve()
	}
	elapsed := time.Since(t)

	fmt.Printf("c time (sec): %f\n", elapsed.Seconds())
	fmt.Printf("c conflicts:  %d (%.2f /sec)\n", s.TotalConflicts, float64(s.TotalConflicts)/elapsed.Seconds())
	fmt.Printf("c decisions:  %d\n", s.TotalDecisions)
	fmt.Printf("c learnts:    %d\n", s.NumLearnts())
	if cfg.all {
		fmt.Printf("c models:     %d\n", len(s.Models))
	}
	fmt.Printf("c status:     %s\n", status.String())

	// The presentation-layer contract (spec.md §6) is the bare result line
	// followed by the witness, independent of the "c ..." progress lines
	// above: "SAT\nv <lits> 0\n" or "UNSAT\n".
	fmt.Println(status.String())
	if status == sat.SAT && !cfg.all {
		printModel(s)
	}

	return nil
}

func printModel(s *sat.Solver) {
	fmt.Print("v")
	for v := 0; v < s.NumVariables(); v++ {
		n := v + 1
		if s.Assignment(v) == sat.False {
			n = -n
		}
		fmt.Printf(" %d", n)
	}
	fmt.Println(" 0")
}

func main() {
	cfg, err := parseConfig()
	if err != nil {
		log.Fatal(err)
	}

	if cfg.cpuProfile {
		f, err := os.Create("cpuprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}

	if cfg.memProfile {
		f, err := os.Create("memprof")
		if err != nil {
			log.Fatal(err)
		}
		pprof.WriteHeapProfile(f)
		f.Close()
		return
	}
}
