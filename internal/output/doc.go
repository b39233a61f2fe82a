// Package output provides structured output handling for the hulo CLI.
//
// Every command writes through a Printer, which switches between
// human-readable and JSON output based on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Done("Message logged.")        // hulo: Message logged. (green)
//	printer.Problem("End task not implemented yet.") // hulo: ... (red)
//	printer.Error(err)                     // Error: ... on stderr
//
// # JSON Mode
//
// When JSON mode is enabled, status lines become {"message": "..."} or
// {"notice": "..."} objects and errors become {"error": "...", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, aborted prompt)
//	output.ExitSystemError // 2: System error (data file I/O)
package output
