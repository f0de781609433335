package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/example/empdir/internal/core/route"
)

// RouteCmd returns the route command
func RouteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Inspect hash-fragment routing",
		Long:  "Resolve, match and build the URL fragments the directory UI navigates with.",
	}

	cmd.AddCommand(routeResolveCmd())
	cmd.AddCommand(routeMatchCmd())
	cmd.AddCommand(routeNavigateCmd())

	return cmd
}

func routeResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve [fragment]",
		Short: "Resolve a fragment into route, params and query",
		Long: `Resolve a fragment into its logical route.

Examples:
  empdir route resolve "/edit/123"
  empdir route resolve "/new?ref=banner"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, ok := route.Resolve(args[0])
			if !ok {
				fmt.Println("Unrecognized fragment, falls back to root")
			}
			printState(state)
			return nil
		},
	}
}

func routeMatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "match [pattern] [path]",
		Short: "Match a path against a pattern and show bound params",
		Long: `Match a path against a route pattern segment by segment.

Pattern segments starting with ":" bind the corresponding path segment.

Examples:
  empdir route match "/edit/:id" "/edit/123"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern, path := args[0], args[1]
			if !route.Match(pattern, path) {
				return fmt.Errorf("%s does not match %s", path, pattern)
			}
			fmt.Printf("%s %s matches %s\n", checkmark(), path, pattern)
			printMap("params", route.Params(pattern, path))
			return nil
		},
	}
}

func routeNavigateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "navigate [root|create|edit]",
		Short: "Build the fragment a navigation would set",
		Long: `Build the fragment for a logical route and show the state a router
listener would receive.

Examples:
  empdir route navigate create
  empdir route navigate edit --id 123`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := cmd.Flags().GetString("id")

			name := route.Name(args[0])
			switch name {
			case route.Root, route.Create, route.Edit:
			default:
				return fmt.Errorf("unknown route: %s\nValid routes: root, create, edit", args[0])
			}

			r := route.New()
			var notified *route.State
			defer r.Subscribe(func(s route.State) { notified = &s })()

			r.Navigate(name, map[string]string{"id": id})
			fmt.Printf("Fragment: %s\n", r.Fragment())
			if notified != nil {
				printState(*notified)
			} else {
				printState(r.Current())
			}
			return nil
		},
	}

	cmd.Flags().String("id", "", "employee id for the edit route")
	return cmd
}

func printState(s route.State) {
	fmt.Printf("Route: %s\n", s.Route)
	printMap("params", s.Params)
	printMap("query", s.Query)
}

func printMap(label string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Printf("%s:\n", label)
	for _, k := range keys {
		fmt.Printf("  %s = %s\n", k, m[k])
	}
}
