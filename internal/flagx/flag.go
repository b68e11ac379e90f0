// Package flagx contains helpers for parsing a subset of the command line.
// Several packages (server config, client config) each own a few flags, so
// every parser must ignore the flags it does not know about instead of
// failing on them.
package flagx

import (
	"flag"
	"os"
	"strings"
)

// FilterArgs returns the arguments from args that belong to one of the
// allowed flags, together with their values.
//
// Both spellings are recognized:
//
//	-c conf.json        flag and value as separate arguments
//	--config=conf.json  flag and value joined with '='
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if name, _, found := strings.Cut(arg, "="); found {
			if _, ok := allowed[name]; ok {
				out = append(out, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			out = append(out, arg)
			// a following non-flag argument is this flag's value
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				out = append(out, args[i+1])
				i++
			}
		}
	}

	return out
}

// JsonConfigFlags extracts the config file path given via -c or -config.
// All other arguments are ignored, so callers can use it before their own
// flag parsing without interference. Returns "" when neither flag is set.
func JsonConfigFlags() string {
	var config string

	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}
