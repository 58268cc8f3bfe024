// Package logger provides leveled logging for sealed CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only critical warnings are shown; the single error line
// for a failed command is printed by main from the returned error.
//
// # Log Methods
//
//	Logger.Infof()       // Shown with --verbose or --debug
//	Logger.Debugf()      // Shown only with --debug
//	Logger.Warnf()       // Shown with --verbose or --debug
//	Logger.WarnfUser()   // Always shown (critical warnings)
//	Logger.Errorf()      // Shown with --debug
//
// Commands create a logger in the root command's PersistentPreRun and use
// it throughout. Key and plaintext bytes must never be passed to any log
// method.
package logger
