// Package session groups the calculator's session state: the reducer that
// evolves a working session and the share codec that serializes it.
package session
