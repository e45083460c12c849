// Package cli provides the operator console of the label station.
//
// The console asks for the operator's card password on start, then reads
// commands until exit:
//
//   - login           : log in again (a new operator takes over the station)
//   - whoami          : show the logged in operator
//   - inject [lbl serial]: put the operator's prefix into a print record
//   - dump            : list decoded credential lines (verbose mode, logged in)
//   - exit | quit     : leave
//
// The logged in operator lives on App as an explicit *session.Session. A
// failed login leaves it untouched; nothing clears it before exit.
package cli
