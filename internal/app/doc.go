// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the execution of a single summary, describe
// or filter operation, decoupled from the command-line entrypoint.
package app
