package cli

import "github.com/spf13/pflag"

// changedFlags lists the names of the flags the user actually set.
// Update commands use it to refuse empty patches.
func changedFlags(fs *pflag.FlagSet) []string {
	var names []string
	fs.Visit(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})
	return names
}
