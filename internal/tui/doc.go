// Package tui is the terminal render surface: a bubbletea program that
// drives one review.Controller from the keyboard.
package tui
