// Package tradebook is a client for a personal stock-trading ledger.
//
// The ledger itself lives in a backend reached through a small REST API:
// transactions (one realized profit or loss per company and day) can be
// listed, created and deleted, imported in bulk, and summarized into
// weekly, monthly and yearly statistics.
//
// The package provides:
//   - the ledger types (Transaction, Statistics, ImportRecord) and the Amount
//     and Currency types used to compute and display money;
//   - Client, a typed client of the backend API;
//   - ParseImport, the parser of tab separated data pasted from a
//     spreadsheet.
//
// The renderer package turns ledger data into a view-model, the app package
// holds the client-side state and actions, and the cmd package is the `tb`
// command line tool built on top of them.
package tradebook
