// Package application provides application initialization and dependency wiring.
// It resolves the fuel calculator for the configured variant, reads the mass
// list, and writes the total, keeping the main package focused on CLI parsing.
package application
