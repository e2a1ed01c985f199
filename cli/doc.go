// Package cli assembles small subcommand-style tools out of reusable
// actions.
//
// An [Action] declares the [Parameter]s it needs and performs one step. A
// [Command] bundles actions under a name and rejects actions whose
// parameters collide. An [App] dispatches the first argument to the
// matching command:
//
//	app, err := cli.NewApp("parts",
//	    cli.MustCommand("make", makeAction{}),
//	    cli.MustCommand("renumber", renumberAction{}),
//	)
//	err = app.Run(ctx, os.Args[1:])
//
// Flags are parsed with pflag, one flag set per command. Positional
// parameters are filled after flags, with required ones taking precedence
// over optional ones.
package cli
