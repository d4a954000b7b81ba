package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"venturecode/internal/prof"
)

// setupProfiling starts the profilers named by the persistent profiling
// flags. The returned cleanup is safe to call more than once.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	root := cmd.Root().PersistentFlags()
	var opts prof.Options
	for name, dst := range map[string]*string{
		"cpu-profile":   &opts.CPUProfile,
		"mem-profile":   &opts.MemProfile,
		"runtime-trace": &opts.RuntimeTrace,
	} {
		v, err := root.GetString(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s flag: %w", name, err)
		}
		*dst = v
	}

	session, err := prof.Start(opts)
	if err != nil {
		return nil, err
	}
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "profiling: %v\n", err)
		}
	}, nil
}
