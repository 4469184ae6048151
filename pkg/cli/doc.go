/*
Package cli provides command-line helpers for the sieve command.

Output Formatting:

Results render as text, JSON or CSV. Text uses a value's own WriteText
method when it has one; CSV requires a value that implements Tabular:

	format, err := cli.ParseOutputFormat(flagValue)
	if err != nil {
		return err
	}
	if err := cli.NewFormatter(format).FormatTo(os.Stdout, report); err != nil {
		return err
	}

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler(cmd.Context())
	defer stop()
*/
package cli
